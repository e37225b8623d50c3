package mock

import (
	"context"

	"github.com/fwojciec/campusguide"
)

var _ campusguide.LocationService = (*LocationService)(nil)

// LocationService is a mock implementation of campusguide.LocationService.
type LocationService struct {
	FindLocationByIDFn func(ctx context.Context, id int) (*campusguide.Location, error)
	FindLocationsFn    func(ctx context.Context, filter campusguide.LocationFilter) ([]*campusguide.Location, error)
	CountLocationsFn   func(ctx context.Context) (int, error)
	SeedIfEmptyFn      func(ctx context.Context, locations []*campusguide.Location) (int, error)
}

func (s *LocationService) FindLocationByID(ctx context.Context, id int) (*campusguide.Location, error) {
	return s.FindLocationByIDFn(ctx, id)
}

func (s *LocationService) FindLocations(ctx context.Context, filter campusguide.LocationFilter) ([]*campusguide.Location, error) {
	return s.FindLocationsFn(ctx, filter)
}

func (s *LocationService) CountLocations(ctx context.Context) (int, error) {
	return s.CountLocationsFn(ctx)
}

func (s *LocationService) SeedIfEmpty(ctx context.Context, locations []*campusguide.Location) (int, error) {
	return s.SeedIfEmptyFn(ctx, locations)
}
