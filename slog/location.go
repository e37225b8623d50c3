package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/campusguide"
)

// Ensure LoggingLocationService implements campusguide.LocationService.
var _ campusguide.LocationService = (*LoggingLocationService)(nil)

// LoggingLocationService wraps a LocationService with logging.
type LoggingLocationService struct {
	next   campusguide.LocationService
	logger *slog.Logger
}

// NewLoggingLocationService creates a new LoggingLocationService.
func NewLoggingLocationService(next campusguide.LocationService, logger *slog.Logger) *LoggingLocationService {
	return &LoggingLocationService{next: next, logger: logger}
}

// FindLocationByID delegates to the wrapped service and logs at debug level.
func (s *LoggingLocationService) FindLocationByID(ctx context.Context, id int) (loc *campusguide.Location, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find location",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLocationByID(ctx, id)
}

// FindLocations delegates to the wrapped service and logs at debug level.
func (s *LoggingLocationService) FindLocations(ctx context.Context, filter campusguide.LocationFilter) (locations []*campusguide.Location, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find locations",
			"count", len(locations),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLocations(ctx, filter)
}

// CountLocations delegates to the wrapped service.
func (s *LoggingLocationService) CountLocations(ctx context.Context) (int, error) {
	return s.next.CountLocations(ctx)
}

// SeedIfEmpty delegates to the wrapped service and logs the outcome.
func (s *LoggingLocationService) SeedIfEmpty(ctx context.Context, locations []*campusguide.Location) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("seed locations",
			"offered", len(locations),
			"inserted", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SeedIfEmpty(ctx, locations)
}
