package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/campusguide"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	loc, err := deps.Catalog.Match(strings.Join(c.Query, " "))
	if campusguide.ErrorCode(err) == campusguide.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, campusguide.HelpMessage)
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", campusguide.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, campusguide.Summary(loc))
	fmt.Fprintf(deps.Stdout, "Facilities: %s\n", strings.Join(loc.Facilities, campusguide.ListSeparator))
	fmt.Fprintf(deps.Stdout, "Timing: %s\n", loc.Timing)
	if loc.Coordinates != "" {
		fmt.Fprintf(deps.Stdout, "Coordinates: %s\n", loc.Coordinates)
	}
	fmt.Fprintf(deps.Stdout, "Image: %s\n", loc.ImagePath)
	return nil
}
