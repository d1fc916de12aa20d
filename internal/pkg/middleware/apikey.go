package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for the collaborating
// services allowed to call the verification entry points.
func ValidateAPIKey(cfg models.APIKeyConfig) echo.MiddlewareFunc {
	allowed := []string{cfg.RegistrationService, cfg.AdminPortal}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, key := range allowed {
				if key != "" && strings.EqualFold(apiKey, key) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
