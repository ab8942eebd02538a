package media

import (
	"context"
	"strings"

	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/lumiera/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// MediaService manages uploaded media objects in the store's object storage
type MediaService struct {
	storage storage.ObjectStorage
	logger  *zap.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(objectStorage storage.ObjectStorage, logger *zap.Logger) *MediaService {
	return &MediaService{
		storage: objectStorage,
		logger:  logger,
	}
}

// DeleteFileRequest identifies the object to remove
type DeleteFileRequest struct {
	FileKey string `json:"file_key" form:"file_key" binding:"required,max=1024"`
}

// DeleteFile removes an object from storage. Deleting an object that does
// not exist is treated as a NOT_FOUND so that the admin UI can show a
// meaningful error instead of silently succeeding.
func (s *MediaService) DeleteFile(ctx context.Context, req DeleteFileRequest) error {
	key := strings.TrimSpace(req.FileKey)
	if key == "" {
		return shared.NewDomainError("INVALID_INPUT", "File key cannot be empty")
	}

	exists, err := s.storage.ObjectExists(ctx, key)
	if err != nil {
		s.logger.Error("failed to check object existence",
			zap.String("file_key", key),
			zap.Error(err),
		)
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}

	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.logger.Error("failed to delete object",
			zap.String("file_key", key),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("media object deleted", zap.String("file_key", key))
	return nil
}
