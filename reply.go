package campusguide

import "fmt"

// HelpMessage is returned when a query matches no location.
const HelpMessage = "I couldn't find that location. Try asking about: Main Entrance, Library, Computer Lab, EC Lab, Mechanical Workshop, Hostels, Cafeteria, Sports Center, Auditorium, or Admin Block."

// Summary returns the one-line chatbot reply for a matched location.
func Summary(loc *Location) string {
	return fmt.Sprintf("Here's the %s! %s", loc.Name, loc.Description)
}
