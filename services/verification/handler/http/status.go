package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/jwt"
	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

// GetStatus handles session status lookups: GET /status/:referenceId.
// Callers returning from a consent redirect pass the state token back as
// ?state=; when present it must validate and name the same session.
func (h *VerificationHandler) GetStatus(c echo.Context) error {
	referenceID := c.Param("referenceId")
	if referenceID == "" {
		return utils.BadRequestResponse(c, "referenceId is required")
	}

	if state := c.QueryParam("state"); state != "" {
		refFromState, err := jwt.ValidateStateToken(state, h.stateSecret)
		if err != nil || refFromState != referenceID {
			logger.Warn("Rejected status lookup with invalid state token",
				logger.String("reference_id", referenceID))
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid state token")
		}
	}

	session, err := h.verificationUC.GetStatus(c.Request().Context(), referenceID)
	if err != nil {
		logger.Warn("Status lookup failed",
			logger.Err(err),
			logger.String("reference_id", referenceID))
		return utils.VerificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session status", models.NewSessionStatusResponse(session))
}
