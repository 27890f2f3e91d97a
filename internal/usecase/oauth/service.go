package oauth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mdourado/box-geotag-service/internal/adapter/storage"
	"github.com/mdourado/box-geotag-service/internal/domain/entity"
)

// Service handles the authorization-code leg of the provider's OAuth2 flow.
// Token persistence and rotation are out of scope; the pair is logged for the
// operator and returned to the caller.
type Service struct {
	exchanger storage.TokenExchanger
	logger    *zap.Logger
}

func NewService(exchanger storage.TokenExchanger, logger *zap.Logger) *Service {
	return &Service{
		exchanger: exchanger,
		logger:    logger,
	}
}

func (s *Service) Exchange(ctx context.Context, code string) (*entity.TokenPair, error) {
	pair, err := s.exchanger.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	s.logger.Info("authorization code exchanged",
		zap.Bool("refresh_token_present", pair.RefreshToken != ""),
	)

	return pair, nil
}
