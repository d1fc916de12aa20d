package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/vericore/kyc/internal/pkg/models"
)

func TestValidateAPIKey(t *testing.T) {
	cfg := models.APIKeyConfig{
		RegistrationService: "registration-key",
		AdminPortal:         "admin-key",
	}

	testCases := []struct {
		name       string
		apiKey     string
		wantStatus int
	}{
		{"registration service key", "registration-key", http.StatusOK},
		{"admin portal key", "admin-key", http.StatusOK},
		{"case insensitive match", "REGISTRATION-KEY", http.StatusOK},
		{"unknown key", "stolen-key", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/status/ref", nil)
			if tc.apiKey != "" {
				req.Header.Set(APIKeyHeader, tc.apiKey)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}

			err := ValidateAPIKey(cfg)(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestValidateAPIKey_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	cfg := models.APIKeyConfig{RegistrationService: "registration-key"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/status/ref", nil)
	req.Header.Set(APIKeyHeader, "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ValidateAPIKey(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
