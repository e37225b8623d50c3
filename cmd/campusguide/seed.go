package main

import (
	"fmt"

	"github.com/fwojciec/campusguide"
)

// Run executes the seed command. Seeding itself happens at startup.
func (c *SeedCmd) Run(deps *Dependencies) error {
	n, err := deps.Locations.CountLocations(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", campusguide.ErrorMessage(err))
		return err
	}

	if deps.Seeded > 0 {
		fmt.Fprintf(deps.Stdout, "Seeded %d locations.\n", deps.Seeded)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Database already has %d locations; nothing seeded.\n", n)
	return nil
}
