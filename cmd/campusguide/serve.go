package main

import (
	"fmt"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := deps.Server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}
	defer deps.Server.Close()

	fmt.Fprintf(deps.Stdout, "Serving %d locations on %s\n", deps.Catalog.Len(), deps.Server.URL())
	return deps.Server.Run(deps.Ctx)
}
