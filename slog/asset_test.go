package slog_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/campusguide"
	"github.com/fwojciec/campusguide/mock"
	cgslog "github.com/fwojciec/campusguide/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAssetStore_OpenAsset(t *testing.T) {
	t.Parallel()

	t.Run("logs path, content type and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.AssetStore{
			OpenAssetFn: func(context.Context, string) (*campusguide.Asset, error) {
				return &campusguide.Asset{
					ContentType: "image/jpeg",
					Size:        4,
					Body:        io.NopCloser(strings.NewReader("jpeg")),
				}, nil
			},
		}

		store := cgslog.NewLoggingAssetStore(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		asset, err := store.OpenAsset(context.Background(), "gate.jpg")

		require.NoError(t, err)
		defer asset.Body.Close()
		output := buf.String()
		assert.Contains(t, output, "open asset")
		assert.Contains(t, output, "path=gate.jpg")
		assert.Contains(t, output, "content_type=image/jpeg")
		assert.Contains(t, output, "size=4")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.AssetStore{
			OpenAssetFn: func(context.Context, string) (*campusguide.Asset, error) {
				return nil, campusguide.Errorf(campusguide.ENOTFOUND, "asset not found")
			},
		}

		store := cgslog.NewLoggingAssetStore(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := store.OpenAsset(context.Background(), "missing.jpg")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=not_found")
	})
}
