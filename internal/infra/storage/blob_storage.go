// Package storage provides the object storage implementation backed by
// gocloud.dev blob buckets (S3, GCS or the local filesystem).
package storage

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"

	"landhub/config"
	"landhub/internal/domain/lifecycle"
	"landhub/internal/domain/service"
	"landhub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported for media uploads.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultFolder = "property-uploads"

// blobStorage is a concrete implementation of the ObjectStorage interface.
// It is a thin proxy: one write per call, no retries, no partial state kept
// on failure.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and returns it as a service.ObjectStorage.
func New(params Params) (service.ObjectStorage, error) {
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
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the content under the given folder, preserving its content
// type, and returns the durable URL and object key.
func (s *blobStorage) Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (*service.StoredObject, error) {
	if folder == "" {
		folder = defaultFolder
	}

	// Object keys are server-generated; the client filename only contributes
	// its extension.
	key := path.Join(folder, uuid.New().String()+strings.ToLower(filepath.Ext(filename)))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Abandon the write; gocloud discards the partial object on close error.
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit object")
	}

	return &service.StoredObject{
		URL: s.objectURL(key),
		Key: key,
	}, nil
}

func (s *blobStorage) objectURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}
