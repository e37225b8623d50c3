package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/campusguide"
)

// Ensure LoggingAssetStore implements campusguide.AssetStore.
var _ campusguide.AssetStore = (*LoggingAssetStore)(nil)

// LoggingAssetStore wraps an AssetStore with logging.
type LoggingAssetStore struct {
	next   campusguide.AssetStore
	logger *slog.Logger
}

// NewLoggingAssetStore creates a new LoggingAssetStore.
func NewLoggingAssetStore(next campusguide.AssetStore, logger *slog.Logger) *LoggingAssetStore {
	return &LoggingAssetStore{next: next, logger: logger}
}

// OpenAsset delegates to the wrapped store and logs the operation.
func (s *LoggingAssetStore) OpenAsset(ctx context.Context, path string) (asset *campusguide.Asset, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path, "duration", time.Since(begin)}
		if asset != nil {
			attrs = append(attrs, "content_type", asset.ContentType, "size", asset.Size)
		}
		if err != nil {
			attrs = append(attrs, "code", campusguide.ErrorCode(err), "err", err)
		}
		s.logger.Info("open asset", attrs...)
	}(time.Now())
	return s.next.OpenAsset(ctx, path)
}
