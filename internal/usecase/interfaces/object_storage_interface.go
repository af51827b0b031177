package interfaces

import (
	"context"
	"io"
)

// IObjectStorage stores vehicle files (MinIO).
type IObjectStorage interface {
	Put(ctx context.Context, objectKey string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectKey string) error
	URL(objectKey string) string
}
