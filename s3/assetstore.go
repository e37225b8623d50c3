// Package s3 provides a campusguide.AssetStore backed by an S3-compatible
// object store (AWS S3 or MinIO).
package s3

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/fwojciec/campusguide"
)

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// Config holds construction parameters for an AssetStore.
type Config struct {
	Bucket          string // default bucket for bare keys
	Region          string
	Endpoint        string // optional; custom endpoint such as MinIO
	AccessKeyID     string // optional; falls back to the default credentials chain
	SecretAccessKey string
	PathStyle       bool

	// HTTPClient overrides the SDK's HTTP client. Optional.
	HTTPClient *http.Client
}

// Ensure AssetStore implements campusguide.AssetStore at compile time.
var _ campusguide.AssetStore = (*AssetStore)(nil)

// AssetStore reads location images from object storage. Paths are either
// s3://bucket/key URLs or keys in the configured bucket.
type AssetStore struct {
	client *s3.Client
	bucket string
}

// NewAssetStore creates an AssetStore from cfg.
func NewAssetStore(ctx context.Context, cfg Config) (*AssetStore, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	if cfg.HTTPClient != nil {
		loadOpts = append(loadOpts, config.WithHTTPClient(cfg.HTTPClient))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &AssetStore{client: client, bucket: cfg.Bucket}, nil
}

// OpenAsset fetches the object named by path.
func (s *AssetStore) OpenAsset(ctx context.Context, path string) (*campusguide.Asset, error) {
	bucket, key, err := s.objectRef(path)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if isNotFound(err) {
		return nil, campusguide.Errorf(campusguide.ENOTFOUND, "asset %q not found", path)
	} else if err != nil {
		return nil, err
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}
	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &campusguide.Asset{
		ContentType: contentType,
		Size:        size,
		Body:        out.Body,
	}, nil
}

// objectRef splits path into bucket and key.
func (s *AssetStore) objectRef(path string) (bucket, key string, err error) {
	if strings.HasPrefix(path, "s3://") {
		u, err := url.Parse(path)
		if err != nil || u.Host == "" {
			return "", "", campusguide.Errorf(campusguide.EINVALID, "invalid asset URL %q", path)
		}
		bucket, key = u.Host, strings.TrimPrefix(u.Path, "/")
	} else {
		bucket, key = s.bucket, strings.TrimPrefix(path, "/")
	}

	if bucket == "" {
		return "", "", campusguide.Errorf(campusguide.EINVALID, "no bucket for asset %q", path)
	}
	if key == "" {
		return "", "", campusguide.Errorf(campusguide.EINVALID, "asset key required")
	}
	return bucket, key, nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
