package main

import (
	"fmt"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	locations := deps.Catalog.Locations()
	if len(locations) == 0 {
		fmt.Fprintln(deps.Stdout, "No locations found.")
		return nil
	}

	for _, loc := range locations {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", loc.ID, loc.Name, loc.Description)
	}

	return nil
}
