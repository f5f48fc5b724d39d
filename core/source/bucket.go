package source

import (
	"context"
	"fmt"
	"io"
	"path"

	"registry-server/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket reads registry files from an S3/MinIO bucket.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket creates a source reading prefix/name keys from bucket.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{client: client, bucket: bucket, prefix: prefix}
}

// ReadFile downloads the object for name.
func (s *Bucket) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	key := path.Join(s.prefix, name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(key, err)
	}
	defer obj.Close()

	// minio defers the request until the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrap(key, err)
	}
	return data, nil
}

func (s *Bucket) wrap(key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s/%s", ErrNotFound, s.bucket, key)
	}
	return fmt.Errorf("failed to get object %s/%s: %w", s.bucket, key, err)
}
