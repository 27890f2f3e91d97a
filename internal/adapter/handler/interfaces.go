package handler

import (
	"context"

	"github.com/mdourado/box-geotag-service/internal/domain/entity"
	"github.com/mdourado/box-geotag-service/internal/usecase/file"
	"github.com/mdourado/box-geotag-service/internal/usecase/webhook"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type FileService interface {
	Upload(ctx context.Context, input file.UploadInput) (*entity.StoredFile, error)
	Delete(ctx context.Context, fileID string) error
	Restore(ctx context.Context, fileID string) (*entity.StoredFile, error)
}

type OAuthService interface {
	Exchange(ctx context.Context, code string) (*entity.TokenPair, error)
}

type WebhookService interface {
	Process(ctx context.Context, payload []byte, signature string) ([]webhook.EventResult, error)
}
