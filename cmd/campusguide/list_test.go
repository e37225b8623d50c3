package main_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/campusguide"
	main "github.com/fwojciec/campusguide/cmd/campusguide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists locations in catalog order", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 10)
		assert.True(t, strings.HasPrefix(lines[0], "1  Main Entrance  "))
		assert.True(t, strings.HasPrefix(lines[9], "10  Administrative Block  "))
	})

	t.Run("reports empty catalog", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)
		catalog, err := campusguide.NewCatalog(nil)
		require.NoError(t, err)
		deps.Catalog = catalog

		err = (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No locations found.")
	})
}
