// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// MinioStorage talks to any S3-compatible endpoint, S3Storage uses the AWS SDK.
package storage

import (
	"context"
	"time"
)

// Storage is the interface for uploading objects and issuing signed URLs.
type Storage interface {
	// UploadFile uploads the local file at path to the store under key.
	UploadFile(ctx context.Context, key, path, contentType string) error
	// PresignPut returns a V4-signed URL that lets a client PUT an object of
	// the given content type to key until expiry elapses.
	PresignPut(ctx context.Context, key string, expiry time.Duration, contentType string) (string, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
