package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

// CreateConsent handles requests to start the consent flow.
func (h *VerificationHandler) CreateConsent(c echo.Context) error {
	var req models.ConsentCreateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for consent creation",
			logger.Err(err),
			logger.String("endpoint", "CreateConsent"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" {
		return utils.BadRequestResponse(c, "identifier is required")
	}

	subjectType, err := models.ParseSubjectType(req.SubjectType)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.verificationUC.CreateConsentSession(c.Request().Context(), subjectType, req.Identifier, req.RedirectURL)
	if err != nil {
		logger.Error("Consent session creation failed",
			logger.Err(err),
			logger.String("subject_type", string(subjectType)))
		return utils.VerificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Consent session created", resp)
}
