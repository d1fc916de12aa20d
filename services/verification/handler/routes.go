package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/middleware"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/services/verification"
	"github.com/vericore/kyc/services/verification/handler/http"
)

// Handler coordinates the protocol handlers for the verification service
type Handler struct {
	verificationHandler *http.VerificationHandler
	cfg                 *models.Config
}

// NewHandler creates a new handler coordinator
func NewHandler(verificationUC verification.VerificationUC, cfg *models.Config) *Handler {
	return &Handler{
		verificationHandler: http.NewVerificationHandler(verificationUC, cfg.Consent.StateSecret),
		cfg:                 cfg,
	}
}

// RegisterRoutes registers the verification routes. Client-facing routes
// require an API key from a collaborating service; the webhook route stays
// open since the provider does not send our keys.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("", middleware.ValidateAPIKey(h.cfg.APIKey))
	api.POST("/verify/:type", h.verificationHandler.VerifyDocument)
	api.POST("/otp/generate", h.verificationHandler.GenerateOTP)
	api.POST("/otp/verify", h.verificationHandler.VerifyOTP)
	api.POST("/consent/create", h.verificationHandler.CreateConsent)
	api.GET("/status/:referenceId", h.verificationHandler.GetStatus)

	e.POST("/webhooks/provider", h.verificationHandler.HandleProviderWebhook)
}
