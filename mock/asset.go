package mock

import (
	"context"

	"github.com/fwojciec/campusguide"
)

var _ campusguide.AssetStore = (*AssetStore)(nil)

// AssetStore is a mock implementation of campusguide.AssetStore.
type AssetStore struct {
	OpenAssetFn func(ctx context.Context, path string) (*campusguide.Asset, error)
}

func (s *AssetStore) OpenAsset(ctx context.Context, path string) (*campusguide.Asset, error) {
	return s.OpenAssetFn(ctx, path)
}
