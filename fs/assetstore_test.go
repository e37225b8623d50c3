package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/campusguide"
	"github.com/fwojciec/campusguide/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestAssetStore_OpenAsset(t *testing.T) {
	t.Parallel()

	t.Run("opens file with size and content type", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "library.png"), "png-bytes")
		store := fs.NewAssetStore(dir)

		asset, err := store.OpenAsset(context.Background(), "library.png")

		require.NoError(t, err)
		defer asset.Body.Close()
		assert.Equal(t, "image/png", asset.ContentType)
		assert.Equal(t, int64(9), asset.Size)
		body, err := io.ReadAll(asset.Body)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(body))
	})

	t.Run("ignores leading slash", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "static", "images", "gate.jpg"), "jpg")
		store := fs.NewAssetStore(dir)

		asset, err := store.OpenAsset(context.Background(), "/static/images/gate.jpg")

		require.NoError(t, err)
		defer asset.Body.Close()
		assert.Equal(t, "image/jpeg", asset.ContentType)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAssetStore(t.TempDir())

		_, err := store.OpenAsset(context.Background(), "missing.jpg")

		require.Error(t, err)
		assert.Equal(t, campusguide.ENOTFOUND, campusguide.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "images"), 0755))
		store := fs.NewAssetStore(dir)

		_, err := store.OpenAsset(context.Background(), "images")

		assert.Equal(t, campusguide.ENOTFOUND, campusguide.ErrorCode(err))
	})

	t.Run("rejects traversal outside root", func(t *testing.T) {
		t.Parallel()

		parent := t.TempDir()
		writeFile(t, filepath.Join(parent, "secret.txt"), "secret")
		root := filepath.Join(parent, "images")
		require.NoError(t, os.Mkdir(root, 0755))
		store := fs.NewAssetStore(root)

		_, err := store.OpenAsset(context.Background(), "../secret.txt")

		require.Error(t, err)
		assert.Equal(t, campusguide.EINVALID, campusguide.ErrorCode(err))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAssetStore(t.TempDir())

		_, err := store.OpenAsset(context.Background(), "/")

		assert.Equal(t, campusguide.EINVALID, campusguide.ErrorCode(err))
	})
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/jpeg", fs.ContentType("a.jpg"))
	assert.Equal(t, "application/octet-stream", fs.ContentType("a.unknownext"))
}
