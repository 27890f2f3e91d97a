package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler/dto/response"
	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/pkg/httputil"
)

// SignatureHeader is the header the storage provider signs its webhook
// notifications with.
const SignatureHeader = "Box-Signature"

type WebhookHandler struct {
	webhookSvc WebhookService
}

func NewWebhookHandler(webhookSvc WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Handle ingests a webhook notification. The raw body bytes are captured
// before any parsing so the signature is computed over exactly what the
// sender hashed.
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_BODY", "unable to read request body")
		return
	}

	_, err = h.webhookSvc.Process(c.Request.Context(), payload, c.GetHeader(SignatureHeader))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid webhook signature")
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PAYLOAD", "unable to decode event envelope")
		return
	}

	httputil.OK(c, response.StatusResponse{Status: "success"})
}
