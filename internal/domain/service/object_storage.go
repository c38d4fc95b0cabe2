package service

import (
	"context"
	"io"
)

// StoredObject is the durable result of a successful upload.
type StoredObject struct {
	// URL is the public, stable URL of the stored object.
	URL string `json:"url"`
	// Key is the provider-side object identifier.
	Key string `json:"public_id"`
}

// ObjectStorage defines the contract for the media ingestion adapter's
// upstream provider. Implementations are thin proxies: no retries, no
// resumable uploads, no content scanning.
type ObjectStorage interface {
	// Upload stores the content under the given folder, preserving the
	// content type, and returns the durable URL and object key.
	Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (*StoredObject, error)
}
