package service

import (
	"context"
	"io"
)

// FileStorage stores uploaded binary objects and hands back public URLs.
type FileStorage interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object stored under key. Missing objects are
	// not an error.
	Delete(ctx context.Context, key string) error
}
