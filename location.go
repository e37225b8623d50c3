package campusguide

import (
	"context"
	"slices"
)

// ListSeparator joins keywords and facilities when they are stored or
// compared as a single string.
const ListSeparator = ", "

// Location represents a named place on campus.
type Location struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
	ImagePath   string   `json:"image_path"`
	Facilities  []string `json:"facilities"`
	Timing      string   `json:"timing"`
	Coordinates string   `json:"coordinates,omitempty"`
}

// Validate returns an error if the location contains invalid fields.
func (l *Location) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "location name required")
	}
	if len(l.Keywords) == 0 {
		return Errorf(EINVALID, "location %q keywords required", l.Name)
	}
	return nil
}

// Clone returns a deep copy of the location.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}
	other := *l
	other.Keywords = slices.Clone(l.Keywords)
	other.Facilities = slices.Clone(l.Facilities)
	return &other
}

// LocationSummary is the reduced form of a location used for listings.
type LocationSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LocationService represents a service for managing persisted locations.
// Locations are written once when the store is empty and never modified.
type LocationService interface {
	// FindLocationByID retrieves a location by ID.
	// Returns ENOTFOUND if location does not exist.
	FindLocationByID(ctx context.Context, id int) (*Location, error)

	// FindLocations retrieves locations matching the filter in catalog order.
	FindLocations(ctx context.Context, filter LocationFilter) ([]*Location, error)

	// CountLocations returns the number of stored locations.
	CountLocations(ctx context.Context) (int, error)

	// SeedIfEmpty inserts locations only if none are stored yet and
	// returns the number of inserted rows.
	SeedIfEmpty(ctx context.Context, locations []*Location) (int, error)
}

// LocationFilter represents a filter for FindLocations.
type LocationFilter struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
