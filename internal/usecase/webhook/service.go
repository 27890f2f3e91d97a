package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mdourado/box-geotag-service/internal/adapter/storage"
	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/domain/entity"
	"github.com/mdourado/box-geotag-service/internal/domain/valueobject"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/auth"
)

// Service processes provider webhook notifications: authenticate the payload,
// then for every upload event fetch the file and extract its GPS coordinates.
// One event means one synchronous fetch-and-extract; there is no retry and no
// queue.
type Service struct {
	storage   storage.FileStorage
	extractor storage.GPSExtractor
	verifier  *auth.SignatureVerifier
	logger    *zap.Logger
}

func NewService(
	fileStorage storage.FileStorage,
	extractor storage.GPSExtractor,
	verifier *auth.SignatureVerifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		storage:   fileStorage,
		extractor: extractor,
		verifier:  verifier,
		logger:    logger,
	}
}

// EventResult is the typed outcome of processing one upload event.
// Coordinates is nil when the file carries no complete GPS block; Err is set
// when the download or the container parse failed.
type EventResult struct {
	FileID      string
	Coordinates *valueobject.Coordinates
	Err         error
}

// Process verifies the signature over the raw payload bytes and handles every
// upload event in the envelope. Events of any other type are ignored. A
// failing event is reported in its result and logged; it never aborts the
// remaining events.
func (s *Service) Process(ctx context.Context, payload []byte, signature string) ([]EventResult, error) {
	if !s.verifier.Verify(payload, signature) {
		return nil, domain.ErrInvalidSignature
	}

	var envelope entity.EventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decoding event envelope: %w", err)
	}

	var results []EventResult
	for _, event := range envelope.Events {
		if event.EventType != entity.EventTypeUpload {
			continue
		}
		results = append(results, s.processUpload(ctx, event.Source.ID))
	}

	return results, nil
}

func (s *Service) processUpload(ctx context.Context, fileID string) EventResult {
	result := EventResult{FileID: fileID}

	data, err := s.storage.Download(ctx, fileID)
	if err != nil {
		result.Err = fmt.Errorf("downloading file: %w", err)
		s.logger.Warn("webhook file download failed",
			zap.String("file_id", fileID),
			zap.Error(err),
		)
		return result
	}

	coords, err := s.extractor.Coordinates(data)
	if err != nil {
		result.Err = fmt.Errorf("extracting coordinates: %w", err)
		if errors.Is(err, domain.ErrUnreadableImage) {
			s.logger.Warn("webhook file is not a readable image",
				zap.String("file_id", fileID),
				zap.Error(err),
			)
		} else {
			s.logger.Warn("coordinate extraction failed",
				zap.String("file_id", fileID),
				zap.Error(err),
			)
		}
		return result
	}

	result.Coordinates = coords
	if coords == nil {
		s.logger.Info("no gps metadata in uploaded file", zap.String("file_id", fileID))
	} else {
		s.logger.Info("gps coordinates extracted",
			zap.String("file_id", fileID),
			zap.Float64("latitude", coords.Latitude),
			zap.Float64("longitude", coords.Longitude),
		)
	}

	return result
}
