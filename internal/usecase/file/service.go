package file

import (
	"context"
	"fmt"
	"io"

	"github.com/mdourado/box-geotag-service/internal/adapter/storage"
	"github.com/mdourado/box-geotag-service/internal/domain/entity"
)

// Service passes file operations straight through to the storage provider.
// Uploads land in the folder configured for the service.
type Service struct {
	storage  storage.FileStorage
	folderID string
}

func NewService(fileStorage storage.FileStorage, folderID string) *Service {
	return &Service{
		storage:  fileStorage,
		folderID: folderID,
	}
}

type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*entity.StoredFile, error) {
	stored, err := s.storage.Upload(ctx, s.folderID, input.Filename, input.File)
	if err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, fileID string) error {
	if err := s.storage.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return nil
}

func (s *Service) Restore(ctx context.Context, fileID string) (*entity.StoredFile, error) {
	stored, err := s.storage.Restore(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("restoring from storage: %w", err)
	}
	return stored, nil
}
