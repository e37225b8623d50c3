// Package fs provides file-based storage for campus assets.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/campusguide"
)

// Ensure AssetStore implements campusguide.AssetStore at compile time.
var _ campusguide.AssetStore = (*AssetStore)(nil)

// AssetStore implements campusguide.AssetStore over a local directory.
// Paths are resolved relative to the root and may not escape it.
type AssetStore struct {
	root string
}

// NewAssetStore creates a new AssetStore rooted at dir.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{root: dir}
}

// OpenAsset opens the file at path below the store root.
func (s *AssetStore) OpenAsset(ctx context.Context, path string) (*campusguide.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := LocalPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, campusguide.Errorf(campusguide.ENOTFOUND, "asset %q not found", path)
	} else if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, campusguide.Errorf(campusguide.ENOTFOUND, "asset %q not found", path)
	}

	return &campusguide.Asset{
		ContentType: ContentType(name),
		Size:        info.Size(),
		Body:        f,
	}, nil
}

// LocalPath converts a slash-separated asset path into a relative OS path.
// A leading slash is ignored. Returns EINVALID for paths that escape the root.
func LocalPath(path string) (string, error) {
	name := strings.TrimLeft(path, "/")
	if name == "" {
		return "", campusguide.Errorf(campusguide.EINVALID, "asset path required")
	}
	name = filepath.FromSlash(name)
	if !filepath.IsLocal(name) {
		return "", campusguide.Errorf(campusguide.EINVALID, "invalid asset path %q", path)
	}
	return name, nil
}

// ContentType returns the MIME type for a file name based on its extension.
func ContentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
