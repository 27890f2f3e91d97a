package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler"
	"github.com/mdourado/box-geotag-service/internal/domain/entity"
	"github.com/mdourado/box-geotag-service/internal/mocks"
)

func TestOAuthHandler_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := handler.NewOAuthHandler(mocks.NewMockOAuthService(ctrl))

	router := setupRouter()
	router.GET("/", h.Health)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestOAuthHandler_Callback(t *testing.T) {
	t.Run("exchanges the authorization code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		oauthSvc := mocks.NewMockOAuthService(ctrl)
		h := handler.NewOAuthHandler(oauthSvc)

		router := setupRouter()
		router.GET("/callback", h.Callback)

		oauthSvc.EXPECT().Exchange(gomock.Any(), "auth-code").
			Return(&entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/callback?code=auth-code", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access")
	})

	t.Run("rejects a callback without a code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := handler.NewOAuthHandler(mocks.NewMockOAuthService(ctrl))

		router := setupRouter()
		router.GET("/callback", h.Callback)

		req := httptest.NewRequest(http.MethodGet, "/callback", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "MISSING_CODE")
	})

	t.Run("maps exchange failure to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		oauthSvc := mocks.NewMockOAuthService(ctrl)
		h := handler.NewOAuthHandler(oauthSvc)

		router := setupRouter()
		router.GET("/callback", h.Callback)

		oauthSvc.EXPECT().Exchange(gomock.Any(), "bad-code").
			Return(nil, errors.New("exchange failed"))

		req := httptest.NewRequest(http.MethodGet, "/callback?code=bad-code", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
