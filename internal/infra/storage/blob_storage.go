// Package storage implements the FileStorage domain service on top of
// gocloud.dev blob buckets, so local disk and GCS are interchangeable
// through configuration.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"plaza/config"
	"plaza/internal/domain/lifecycle"
	"plaza/internal/domain/service"
	"plaza/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // Register the file:// driver.
	_ "gocloud.dev/blob/gcsblob"  // Register the gs:// driver.
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStorage implements the service.FileStorage interface.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New creates a FileStorage backed by the configured bucket URL.
func New(params Params) (service.FileStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the object under key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", wrapBucketError(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Abort the write; Close would otherwise commit a partial object.
		_ = writer.Close()

		return "", wrapBucketError(err, "failed to write object")
	}

	if err := writer.Close(); err != nil {
		return "", wrapBucketError(err, "failed to commit object")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object stored under key. Missing objects are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return wrapBucketError(err, "failed to delete object")
	}

	return nil
}

// wrapBucketError attaches the failure class to the message so callers
// can report bucket-missing and permission problems distinctly.
func wrapBucketError(err error, message string) error {
	switch gcerrors.Code(err) {
	case gcerrors.NotFound:
		return errors.Wrap(err, message+": bucket or object missing")
	case gcerrors.PermissionDenied:
		return errors.Wrap(err, message+": permission denied")
	default:
		return errors.Wrap(err, message)
	}
}
