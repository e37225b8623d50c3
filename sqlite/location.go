package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fwojciec/campusguide"
)

// Compile-time interface verification.
var _ campusguide.LocationService = (*LocationService)(nil)

// LocationService implements campusguide.LocationService using SQLite.
type LocationService struct {
	db *DB
}

// NewLocationService creates a new LocationService.
func NewLocationService(db *DB) *LocationService {
	return &LocationService{db: db}
}

const locationColumns = "id, name, keywords, description, image_path, facilities, timing, coordinates"

// FindLocationByID retrieves a location by ID.
func (s *LocationService) FindLocationByID(ctx context.Context, id int) (*campusguide.Location, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+locationColumns+" FROM locations WHERE id = ?", id)

	loc, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, campusguide.Errorf(campusguide.ENOTFOUND, "location %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// FindLocations retrieves locations matching the filter, ordered by ID.
func (s *LocationService) FindLocations(ctx context.Context, filter campusguide.LocationFilter) ([]*campusguide.Location, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + locationColumns + " FROM locations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]*campusguide.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// CountLocations returns the number of stored locations.
func (s *LocationService) CountLocations(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SeedIfEmpty inserts locations in order if the table is empty. The count and
// the inserts run in one transaction so concurrent seeders insert at most once.
// Inserted locations have their ID set.
func (s *LocationService) SeedIfEmpty(ctx context.Context, locations []*campusguide.Location) (int, error) {
	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations").Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (name, keywords, description, image_path, facilities, timing, coordinates)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	ids := make([]int, len(locations))
	for i, loc := range locations {
		var coordinates sql.NullString
		if loc.Coordinates != "" {
			coordinates = sql.NullString{String: loc.Coordinates, Valid: true}
		}

		result, err := stmt.ExecContext(ctx, loc.Name, joinList(loc.Keywords), loc.Description,
			loc.ImagePath, joinList(loc.Facilities), loc.Timing, coordinates)
		if err != nil {
			return 0, fmt.Errorf("failed to insert location %q: %w", loc.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return 0, err
		}
		ids[i] = int(id)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	for i, loc := range locations {
		loc.ID = ids[i]
	}
	return len(locations), nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(row scanner) (*campusguide.Location, error) {
	var loc campusguide.Location
	var keywords, facilities string
	var coordinates sql.NullString

	if err := row.Scan(&loc.ID, &loc.Name, &keywords, &loc.Description,
		&loc.ImagePath, &facilities, &loc.Timing, &coordinates); err != nil {
		return nil, err
	}

	loc.Keywords = splitList(keywords)
	loc.Facilities = splitList(facilities)
	loc.Coordinates = coordinates.String
	return &loc, nil
}
