package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
)

// HandleProviderWebhook receives provider push notifications. It always
// answers 200 with an acknowledgement envelope, even when processing failed,
// so the provider never retries delivery indefinitely; failures are logged
// and the reconciler catches up on the next poll.
func (h *VerificationHandler) HandleProviderWebhook(c echo.Context) error {
	ack := models.WebhookAck{
		Success:   true,
		Received:  true,
		Timestamp: time.Now().UTC(),
	}

	var event models.WebhookEvent
	if err := c.Bind(&event); err != nil {
		logger.Warn("Malformed webhook payload acknowledged", logger.Err(err))
		ack.Success = false
		return c.JSON(http.StatusOK, ack)
	}

	if err := h.verificationUC.ReconcileWebhookEvent(c.Request().Context(), &event); err != nil {
		logger.Error("Webhook reconciliation failed",
			logger.Err(err),
			logger.String("event_type", event.Kind()),
			logger.String("verification_id", event.Data.VerificationID))
		ack.Success = false
	}

	return c.JSON(http.StatusOK, ack)
}
