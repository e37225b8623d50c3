package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/campusguide"
	main "github.com/fwojciec/campusguide/cmd/campusguide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	locations := campusguide.DefaultLocations()
	for i, loc := range locations {
		loc.ID = i + 1
	}
	catalog, err := campusguide.NewCatalog(locations)
	require.NoError(t, err)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Catalog: catalog,
	}, stdout, stderr
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matched location", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newTestDeps(t)

		cmd := &main.SearchCmd{Query: []string{"  Technical", "LIBRARY  "}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Here's the Technical Library!")
		assert.Contains(t, stdout.String(), "Facilities: Technical Books Collection, Digital Library")
		assert.Contains(t, stdout.String(), "Timing: Mon-Sun: 8:00 AM - 10:00 PM")
		assert.Contains(t, stdout.String(), "Coordinates: 22.2590° N, 73.2125° E")
		assert.Contains(t, stdout.String(), "library.jpg")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints help when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps(t)

		cmd := &main.SearchCmd{Query: []string{"swimming", "pool"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, campusguide.HelpMessage+"\n", stdout.String())
	})

	t.Run("reports blank query", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newTestDeps(t)

		cmd := &main.SearchCmd{Query: []string{"   "}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, campusguide.EINVALID, campusguide.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: query required")
		assert.Empty(t, stdout.String())
	})
}
