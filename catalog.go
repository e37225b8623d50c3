package campusguide

import (
	"strings"
)

// MatchPass identifies which scan of the catalog produced a match.
type MatchPass int

// MatchPass values.
const (
	PassNone    MatchPass = iota // no match
	PassPhrase                   // query found in the name or the joined keyword string
	PassKeyword                  // query found in a single keyword token
)

func (p MatchPass) String() string {
	switch p {
	case PassPhrase:
		return "phrase"
	case PassKeyword:
		return "keyword"
	default:
		return "none"
	}
}

// Catalog is an immutable, ordered set of locations. Catalog order is the
// tie-break when more than one location matches a query.
// A Catalog is safe for concurrent use.
type Catalog struct {
	locations []*Location
}

// NewCatalog returns a catalog holding copies of the given locations.
func NewCatalog(locations []*Location) (*Catalog, error) {
	c := &Catalog{locations: make([]*Location, 0, len(locations))}
	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return nil, err
		}
		c.locations = append(c.locations, loc.Clone())
	}
	return c, nil
}

// Len returns the number of locations in the catalog.
func (c *Catalog) Len() int {
	return len(c.locations)
}

// Locations returns copies of all locations in catalog order.
func (c *Catalog) Locations() []*Location {
	a := make([]*Location, len(c.locations))
	for i, loc := range c.locations {
		a[i] = loc.Clone()
	}
	return a
}

// Location returns the location with the given ID.
// Returns ENOTFOUND if no such location is in the catalog.
func (c *Catalog) Location(id int) (*Location, error) {
	for _, loc := range c.locations {
		if loc.ID == id {
			return loc.Clone(), nil
		}
	}
	return nil, Errorf(ENOTFOUND, "location %d not found", id)
}

// Names returns the display names of all locations in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.locations))
	for i, loc := range c.locations {
		names[i] = loc.Name
	}
	return names
}

// Summaries returns the name and description of every location in catalog order.
func (c *Catalog) Summaries() []LocationSummary {
	a := make([]LocationSummary, len(c.locations))
	for i, loc := range c.locations {
		a[i] = LocationSummary{Name: loc.Name, Description: loc.Description}
	}
	return a
}

// Match returns the first location whose name or keywords contain the query.
// Returns EINVALID if the query is blank and ENOTFOUND, carrying HelpMessage,
// if nothing matches.
func (c *Catalog) Match(query string) (*Location, error) {
	loc, _, err := c.MatchPass(query)
	return loc, err
}

// MatchPass is like Match but also reports which pass found the location.
func (c *Catalog) MatchPass(query string) (*Location, MatchPass, error) {
	q := NormalizeQuery(query)
	if q == "" {
		return nil, PassNone, Errorf(EINVALID, "query required")
	}

	for _, loc := range c.locations {
		name := strings.ToLower(loc.Name)
		keywords := strings.ToLower(strings.Join(loc.Keywords, ListSeparator))
		if strings.Contains(name, q) || strings.Contains(keywords, q) {
			return loc.Clone(), PassPhrase, nil
		}
	}

	// Per-keyword pass. Any hit here is also a hit on the joined string
	// above, so in practice this only runs to confirm there is no match.
	for _, loc := range c.locations {
		for _, k := range loc.Keywords {
			if strings.Contains(strings.ToLower(strings.TrimSpace(k)), q) {
				return loc.Clone(), PassKeyword, nil
			}
		}
	}

	return nil, PassNone, &Error{Code: ENOTFOUND, Message: HelpMessage}
}

// NormalizeQuery trims surrounding whitespace and lowercases the query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
