package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// VerificationErrorResponse maps the verification error taxonomy onto HTTP
// status codes. Unclassified errors surface as 500.
func VerificationErrorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch models.KindOf(err) {
	case models.ErrKindValidation, models.ErrKindMismatch:
		status = http.StatusBadRequest
	case models.ErrKindNotFound:
		status = http.StatusNotFound
	case models.ErrKindExpired:
		status = http.StatusGone
	case models.ErrKindRejected, models.ErrKindConsentDenied:
		status = http.StatusUnprocessableEntity
	case models.ErrKindUnavailable:
		status = http.StatusServiceUnavailable
	case models.ErrKindAuthFailed:
		status = http.StatusBadGateway
	}

	return ErrorResponseHandler(c, status, err.Error())
}
