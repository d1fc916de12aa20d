package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

// GenerateOTP handles requests to start the Aadhaar OTP flow.
func (h *VerificationHandler) GenerateOTP(c echo.Context) error {
	var req models.OTPGenerateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP generation",
			logger.Err(err),
			logger.String("endpoint", "GenerateOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.AadhaarNumber == "" {
		return utils.BadRequestResponse(c, "aadhaar_number is required")
	}

	session, err := h.verificationUC.GenerateOTP(c.Request().Context(), req.AadhaarNumber)
	if err != nil {
		logger.Error("OTP generation failed", logger.Err(err))
		return utils.VerificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", models.NewSessionStatusResponse(session))
}

// VerifyOTP handles OTP code submissions.
func (h *VerificationHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.Err(err),
			logger.String("endpoint", "VerifyOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ReferenceID == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "reference_id and code are required")
	}

	session, err := h.verificationUC.VerifyOTP(c.Request().Context(), req.ReferenceID, req.Code)
	if err != nil {
		logger.Warn("OTP verification failed",
			logger.Err(err),
			logger.String("reference_id", req.ReferenceID))
		return utils.VerificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", models.NewSessionStatusResponse(session))
}
