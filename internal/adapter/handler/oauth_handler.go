package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler/dto/response"
	"github.com/mdourado/box-geotag-service/internal/pkg/httputil"
)

type OAuthHandler struct {
	oauthSvc OAuthService
}

func NewOAuthHandler(oauthSvc OAuthService) *OAuthHandler {
	return &OAuthHandler{oauthSvc: oauthSvc}
}

func (h *OAuthHandler) Health(c *gin.Context) {
	httputil.OK(c, gin.H{"status": "ok"})
}

// Callback handles the provider's OAuth2 redirect and exchanges the
// authorization code for a token pair.
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_CODE", "authorization code not found")
		return
	}

	pair, err := h.oauthSvc.Exchange(c.Request.Context(), code)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadGateway, "PROVIDER_ERROR", "authorization code exchange failed")
		return
	}

	httputil.OK(c, response.TokenResponse{
		Status:      "success",
		AccessToken: pair.AccessToken,
	})
}
