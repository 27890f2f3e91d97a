package webhook_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/domain/valueobject"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/auth"
	"github.com/mdourado/box-geotag-service/internal/mocks"
	"github.com/mdourado/box-geotag-service/internal/usecase/webhook"
)

const testSecret = "webhook-secret"

func sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func newService(t *testing.T) (*webhook.Service, *mocks.MockFileStorage, *mocks.MockGPSExtractor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockFileStorage(ctrl)
	extractor := mocks.NewMockGPSExtractor(ctrl)
	verifier := auth.NewSignatureVerifier(testSecret)
	svc := webhook.NewService(storage, extractor, verifier, zap.NewNop())

	return svc, storage, extractor
}

func TestService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an invalid signature without downstream calls", func(t *testing.T) {
		svc, _, _ := newService(t)

		payload := []byte(`{"events":[{"event_type":"UPLOAD","source":{"id":"123"}}]}`)
		results, err := svc.Process(ctx, payload, "not-a-signature")

		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		assert.Nil(t, results)
	})

	t.Run("accepts an empty event list without downstream calls", func(t *testing.T) {
		svc, _, _ := newService(t)

		payload := []byte(`{"events":[]}`)
		results, err := svc.Process(ctx, payload, sign(payload))

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("rejects a verified but malformed envelope", func(t *testing.T) {
		svc, _, _ := newService(t)

		payload := []byte(`not json at all`)
		_, err := svc.Process(ctx, payload, sign(payload))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("downloads and extracts for upload events only", func(t *testing.T) {
		svc, storage, extractor := newService(t)

		imageData := []byte("image bytes")
		coords := valueobject.NewCoordinates(40.7484, -73.9858)

		storage.EXPECT().Download(ctx, "123").Return(imageData, nil)
		extractor.EXPECT().Coordinates(imageData).Return(coords, nil)

		payload := []byte(`{"events":[
			{"event_type":"UPLOAD","source":{"id":"123"}},
			{"event_type":"DELETE","source":{"id":"456"}}
		]}`)
		results, err := svc.Process(ctx, payload, sign(payload))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "123", results[0].FileID)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, coords, results[0].Coordinates)
	})

	t.Run("a file without gps metadata is not found, not an error", func(t *testing.T) {
		svc, storage, extractor := newService(t)

		imageData := []byte("plain image")
		storage.EXPECT().Download(ctx, "123").Return(imageData, nil)
		extractor.EXPECT().Coordinates(imageData).Return(nil, nil)

		payload := []byte(`{"events":[{"event_type":"UPLOAD","source":{"id":"123"}}]}`)
		results, err := svc.Process(ctx, payload, sign(payload))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.NoError(t, results[0].Err)
		assert.Nil(t, results[0].Coordinates)
	})

	t.Run("a failing event does not abort the remaining events", func(t *testing.T) {
		svc, storage, extractor := newService(t)

		imageData := []byte("image bytes")
		coords := valueobject.NewCoordinates(-40.7484, 73.9858)

		storage.EXPECT().Download(ctx, "123").Return(nil, domain.ErrFileNotFound)
		storage.EXPECT().Download(ctx, "456").Return(imageData, nil)
		extractor.EXPECT().Coordinates(imageData).Return(coords, nil)

		payload := []byte(`{"events":[
			{"event_type":"UPLOAD","source":{"id":"123"}},
			{"event_type":"UPLOAD","source":{"id":"456"}}
		]}`)
		results, err := svc.Process(ctx, payload, sign(payload))

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.ErrorIs(t, results[0].Err, domain.ErrFileNotFound)
		assert.NoError(t, results[1].Err)
		assert.Equal(t, coords, results[1].Coordinates)
	})

	t.Run("an unreadable file surfaces a typed result error", func(t *testing.T) {
		svc, storage, extractor := newService(t)

		junk := []byte("not an image")
		storage.EXPECT().Download(ctx, "123").Return(junk, nil)
		extractor.EXPECT().Coordinates(junk).Return(nil, domain.ErrUnreadableImage)

		payload := []byte(`{"events":[{"event_type":"UPLOAD","source":{"id":"123"}}]}`)
		results, err := svc.Process(ctx, payload, sign(payload))

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, errors.Is(results[0].Err, domain.ErrUnreadableImage))
		assert.Nil(t, results[0].Coordinates)
	})
}
