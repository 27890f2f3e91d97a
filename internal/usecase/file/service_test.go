package file_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/domain/entity"
	"github.com/mdourado/box-geotag-service/internal/mocks"
	"github.com/mdourado/box-geotag-service/internal/usecase/file"
)

const folderID = "4242"

func TestService_Upload(t *testing.T) {
	t.Run("uploads into the configured folder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockFileStorage(ctrl)
		svc := file.NewService(storage, folderID)

		ctx := context.Background()
		content := bytes.NewReader([]byte("image data"))
		stored := &entity.StoredFile{ID: "123", Name: "photo.jpg"}

		storage.EXPECT().Upload(ctx, folderID, "photo.jpg", content).Return(stored, nil)

		result, err := svc.Upload(ctx, file.UploadInput{
			File:        content,
			Filename:    "photo.jpg",
			ContentType: "image/jpeg",
			Size:        10,
		})

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("propagates provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockFileStorage(ctrl)
		svc := file.NewService(storage, folderID)

		ctx := context.Background()
		storage.EXPECT().Upload(ctx, folderID, gomock.Any(), gomock.Any()).Return(nil, domain.ErrProviderFailure)

		result, err := svc.Upload(ctx, file.UploadInput{
			File:     bytes.NewReader(nil),
			Filename: "photo.jpg",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrProviderFailure)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockFileStorage(ctrl)
		svc := file.NewService(storage, folderID)

		ctx := context.Background()
		storage.EXPECT().Delete(ctx, "123").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "123"))
	})

	t.Run("propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockFileStorage(ctrl)
		svc := file.NewService(storage, folderID)

		ctx := context.Background()
		storage.EXPECT().Delete(ctx, "123").Return(domain.ErrFileNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, "123"), domain.ErrFileNotFound)
	})
}

func TestService_Restore(t *testing.T) {
	t.Run("restores by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockFileStorage(ctrl)
		svc := file.NewService(storage, folderID)

		ctx := context.Background()
		stored := &entity.StoredFile{ID: "123", Name: "photo.jpg"}
		storage.EXPECT().Restore(ctx, "123").Return(stored, nil)

		result, err := svc.Restore(ctx, "123")

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockFileStorage(ctrl)
		svc := file.NewService(storage, folderID)

		ctx := context.Background()
		storage.EXPECT().Restore(ctx, "123").Return(nil, domain.ErrFileNotFound)

		result, err := svc.Restore(ctx, "123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})
}
