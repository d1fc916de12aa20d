package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
	"github.com/vericore/kyc/services/verification"
)

// VerificationHandler handles HTTP requests for verification operations
type VerificationHandler struct {
	verificationUC verification.VerificationUC
	stateSecret    string
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUC verification.VerificationUC, stateSecret string) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: verificationUC,
		stateSecret:    stateSecret,
	}
}

// VerifyDocument handles synchronous document verification requests.
// The subject type comes from the path: POST /verify/:type.
func (h *VerificationHandler) VerifyDocument(c echo.Context) error {
	subjectType, err := models.ParseSubjectType(c.Param("type"))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.VerifyDocumentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for document verification",
			logger.Err(err),
			logger.String("endpoint", "VerifyDocument"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" {
		return utils.BadRequestResponse(c, "identifier is required")
	}

	session, err := h.verificationUC.VerifyDocument(c.Request().Context(), subjectType, req.Identifier, req.Name)
	if err != nil {
		logger.Error("Document verification failed",
			logger.Err(err),
			logger.String("subject_type", string(subjectType)))
		return utils.VerificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification completed", models.NewSessionStatusResponse(session))
}
