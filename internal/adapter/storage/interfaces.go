package storage

import (
	"context"
	"io"

	"github.com/mdourado/box-geotag-service/internal/domain/entity"
	"github.com/mdourado/box-geotag-service/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// FileStorage is the storage provider the service fronts. Every call carries
// the bearer credential configured at construction time.
type FileStorage interface {
	Upload(ctx context.Context, folderID, name string, content io.Reader) (*entity.StoredFile, error)
	Delete(ctx context.Context, fileID string) error
	Restore(ctx context.Context, fileID string) (*entity.StoredFile, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// TokenExchanger swaps an OAuth2 authorization code for a token pair.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code string) (*entity.TokenPair, error)
}

// GPSExtractor reads embedded image metadata and reports the location it
// encodes, or nil when the image carries none.
type GPSExtractor interface {
	Coordinates(data []byte) (*valueobject.Coordinates, error)
}
