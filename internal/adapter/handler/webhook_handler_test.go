package handler_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler"
	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/mocks"
	"github.com/mdourado/box-geotag-service/internal/usecase/webhook"
)

func TestWebhookHandler_Handle(t *testing.T) {
	t.Run("passes raw body and signature header to the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		webhookSvc := mocks.NewMockWebhookService(ctrl)
		h := handler.NewWebhookHandler(webhookSvc)

		router := setupRouter()
		router.POST("/webhook/box", h.Handle)

		payload := []byte(`{"events":[]}`)
		webhookSvc.EXPECT().
			Process(gomock.Any(), payload, "deadbeef").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/box", bytes.NewReader(payload))
		req.Header.Set(handler.SignatureHeader, "deadbeef")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "success")
	})

	t.Run("rejects an invalid signature with 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		webhookSvc := mocks.NewMockWebhookService(ctrl)
		h := handler.NewWebhookHandler(webhookSvc)

		router := setupRouter()
		router.POST("/webhook/box", h.Handle)

		webhookSvc.EXPECT().
			Process(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrInvalidSignature)

		req := httptest.NewRequest(http.MethodPost, "/webhook/box", bytes.NewReader([]byte(`{"events":[]}`)))
		req.Header.Set(handler.SignatureHeader, "forged")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("maps an undecodable envelope to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		webhookSvc := mocks.NewMockWebhookService(ctrl)
		h := handler.NewWebhookHandler(webhookSvc)

		router := setupRouter()
		router.POST("/webhook/box", h.Handle)

		webhookSvc.EXPECT().
			Process(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("decoding event envelope: boom"))

		req := httptest.NewRequest(http.MethodPost, "/webhook/box", bytes.NewReader([]byte(`garbage`)))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("processing results do not leak into the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		webhookSvc := mocks.NewMockWebhookService(ctrl)
		h := handler.NewWebhookHandler(webhookSvc)

		router := setupRouter()
		router.POST("/webhook/box", h.Handle)

		webhookSvc.EXPECT().
			Process(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]webhook.EventResult{{FileID: "123"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhook/box", bytes.NewReader([]byte(`{"events":[{"event_type":"UPLOAD","source":{"id":"123"}}]}`)))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "123")
	})
}
