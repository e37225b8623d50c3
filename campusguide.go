// Package campusguide provides a campus information chatbot. It matches
// free-text questions against a small catalog of named campus locations and
// answers with a description, facility list, opening hours, and coordinates.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, s3/).
package campusguide
