package usecase

import (
	"context"
	"io"

	"landhub/internal/domain/service"
)

// --- Input DTOs ---

// UploadInput describes a single multipart file upload.
// Size is checked against the configured ceiling before any byte is
// forwarded to the storage provider.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
	Bucket      string
	Folder      string
}

// UploadUsecase defines the interface for the media ingestion adapter.
type UploadUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*service.StoredObject, error)
}
