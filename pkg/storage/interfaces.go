package storage

import (
	"context"
	"io"
)

// Storage is the media library backend: objects are addressed by key and
// served from a public base URL.
type Storage interface {
	Upload(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, objectKey string) error
	// ObjectKey maps a public URL produced by Upload back to its key.
	ObjectKey(publicURL string) (string, bool)
}

type ProviderConfig interface {
	Validate() error
}
