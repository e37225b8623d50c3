package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/campusguide"
	"github.com/fwojciec/campusguide/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func setupSeededService(t *testing.T) *sqlite.LocationService {
	t.Helper()
	svc := sqlite.NewLocationService(setupTestDB(t))
	n, err := svc.SeedIfEmpty(context.Background(), campusguide.DefaultLocations())
	require.NoError(t, err)
	require.Equal(t, 10, n)
	return svc
}

func TestLocationService_SeedIfEmpty(t *testing.T) {
	t.Parallel()

	t.Run("inserts all locations into empty table and assigns IDs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLocationService(setupTestDB(t))
		ctx := context.Background()
		locations := campusguide.DefaultLocations()

		n, err := svc.SeedIfEmpty(ctx, locations)

		require.NoError(t, err)
		assert.Equal(t, len(locations), n)
		for i, loc := range locations {
			assert.Equal(t, i+1, loc.ID, loc.Name)
		}
		count, err := svc.CountLocations(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(locations), count)
	})

	t.Run("is a no-op when locations already exist", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)
		ctx := context.Background()

		n, err := svc.SeedIfEmpty(ctx, campusguide.DefaultLocations())

		require.NoError(t, err)
		assert.Zero(t, n)
		count, err := svc.CountLocations(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, count)
	})

	t.Run("concurrent seeders on one file insert once", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "campus.db")
		services := make([]*sqlite.LocationService, 4)
		for i := range services {
			db := sqlite.NewDB(path)
			require.NoError(t, db.Open())
			t.Cleanup(func() { db.Close() })
			services[i] = sqlite.NewLocationService(db)
		}

		inserted := make([]int, len(services))
		errs := make([]error, len(services))
		var wg sync.WaitGroup
		for i, svc := range services {
			wg.Add(1)
			go func() {
				defer wg.Done()
				inserted[i], errs[i] = svc.SeedIfEmpty(context.Background(), campusguide.DefaultLocations())
			}()
		}
		wg.Wait()

		total := 0
		for i := range services {
			require.NoError(t, errs[i])
			total += inserted[i]
		}
		assert.Equal(t, 10, total)

		n, err := services[0].CountLocations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("rejects invalid location without inserting anything", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLocationService(setupTestDB(t))
		ctx := context.Background()

		_, err := svc.SeedIfEmpty(ctx, []*campusguide.Location{
			{Name: "Quad", Keywords: []string{"quad"}},
			{Name: "Nowhere"},
		})

		require.Error(t, err)
		assert.Equal(t, campusguide.EINVALID, campusguide.ErrorCode(err))
		count, err := svc.CountLocations(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestLocationService_FindLocationByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips every field", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)
		want := campusguide.DefaultLocations()[2]
		want.ID = 3

		got, err := svc.FindLocationByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns ENOTFOUND for missing location", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)

		_, err := svc.FindLocationByID(context.Background(), 404)

		require.Error(t, err)
		assert.Equal(t, campusguide.ENOTFOUND, campusguide.ErrorCode(err))
	})

	t.Run("reads missing coordinates as empty", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLocationService(setupTestDB(t))
		ctx := context.Background()
		_, err := svc.SeedIfEmpty(ctx, []*campusguide.Location{
			{Name: "Quad", Keywords: []string{"quad", "lawn"}, Facilities: []string{"Benches"}},
		})
		require.NoError(t, err)

		got, err := svc.FindLocationByID(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, got.Coordinates)
		assert.Equal(t, []string{"quad", "lawn"}, got.Keywords)
	})
}

func TestLocationService_FindLocations(t *testing.T) {
	t.Parallel()

	t.Run("returns all locations in catalog order", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)

		locations, err := svc.FindLocations(context.Background(), campusguide.LocationFilter{})

		require.NoError(t, err)
		require.Len(t, locations, 10)
		for i, want := range campusguide.DefaultLocations() {
			assert.Equal(t, want.Name, locations[i].Name)
		}
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)
		name := "Auditorium"

		locations, err := svc.FindLocations(context.Background(), campusguide.LocationFilter{Name: &name})

		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, 9, locations[0].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)
		id := 4

		locations, err := svc.FindLocations(context.Background(), campusguide.LocationFilter{ID: &id})

		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, "Electronics & Communication Lab", locations[0].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)

		locations, err := svc.FindLocations(context.Background(), campusguide.LocationFilter{Limit: 2, Offset: 3})

		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, 4, locations[0].ID)
		assert.Equal(t, 5, locations[1].ID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := setupSeededService(t)

		locations, err := svc.FindLocations(context.Background(), campusguide.LocationFilter{Offset: 8})

		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, "Administrative Block", locations[1].Name)
	})

	t.Run("returns empty slice for empty table", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewLocationService(setupTestDB(t))

		locations, err := svc.FindLocations(context.Background(), campusguide.LocationFilter{})

		require.NoError(t, err)
		assert.Empty(t, locations)
	})
}
