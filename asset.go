package campusguide

import (
	"context"
	"io"
	"net/url"
)

// Asset is an opened location image. Callers must close Body.
type Asset struct {
	ContentType string
	Size        int64 // -1 when unknown
	Body        io.ReadCloser
}

// AssetStore resolves an image path to its bytes.
type AssetStore interface {
	// OpenAsset opens the asset at path.
	// Returns ENOTFOUND if the asset does not exist and EINVALID if the
	// path is not acceptable to the store.
	OpenAsset(ctx context.Context, path string) (*Asset, error)
}

// Ensure AssetRouter implements AssetStore at compile time.
var _ AssetStore = (*AssetRouter)(nil)

// AssetRouter dispatches image paths to a store by URL scheme:
// http and https go to Remote, s3 goes to Objects, anything else to Local.
// A nil store yields ENOTIMPLEMENTED for its scheme.
type AssetRouter struct {
	Local   AssetStore
	Remote  AssetStore
	Objects AssetStore
}

// OpenAsset opens path using the store registered for its scheme.
func (r *AssetRouter) OpenAsset(ctx context.Context, path string) (*Asset, error) {
	if path == "" {
		return nil, Errorf(EINVALID, "asset path required")
	}

	u, err := url.Parse(path)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid asset path %q", path)
	}

	var store AssetStore
	switch u.Scheme {
	case "http", "https":
		store = r.Remote
	case "s3":
		store = r.Objects
	case "":
		store = r.Local
	default:
		return nil, Errorf(EINVALID, "unsupported asset scheme %q", u.Scheme)
	}
	if store == nil {
		return nil, Errorf(ENOTIMPLEMENTED, "no asset store configured for %q", path)
	}
	return store.OpenAsset(ctx, path)
}
