package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=file_store.go -destination=mock/file_store_mock.go -package=mock
type FileStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
