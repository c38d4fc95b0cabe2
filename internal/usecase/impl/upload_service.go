package impl

import (
	"context"
	"fmt"
	"log/slog"

	"landhub/config"
	deliverycontext "landhub/internal/delivery/context"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/service"
	"landhub/internal/usecase"

	"github.com/pkg/errors"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage      service.ObjectStorage
	maxFileBytes int64
	logger       *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(
	cfg *config.Config,
	storage service.ObjectStorage,
	logger *slog.Logger,
) usecase.UploadUsecase {
	var maxFileBytes int64
	if cfg.Upload != nil {
		maxFileBytes = cfg.Upload.MaxFileBytes
	}

	return &uploadService{
		storage:      storage,
		maxFileBytes: maxFileBytes,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload forwards a single file to the storage provider. The size ceiling is
// enforced before any byte leaves the process.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*service.StoredObject, error) {
	if input.Content == nil {
		return nil, errors.Wrap(domainerrors.ErrFileRequired, "no file uploaded")
	}
	if srv.maxFileBytes > 0 && input.Size > srv.maxFileBytes {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("file exceeds the %d byte limit", srv.maxFileBytes))
	}

	folder := input.Folder
	if folder == "" {
		folder = input.Bucket
	}

	srv.log(ctx).Info("Uploading file", "filename", input.Filename, "size", input.Size, "folder", folder)

	object, err := srv.storage.Upload(ctx, folder, input.Filename, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Upload failed", "filename", input.Filename, "error", err)

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, "storage provider rejected the upload")
	}

	return object, nil
}
