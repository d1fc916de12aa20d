package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	httpclient "github.com/vericore/kyc/internal/pkg/http"
	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
)

// Client talks to the external verification provider. Each adapter method
// decodes into an explicit per-endpoint schema and normalizes it into the
// canonical contract; provider field names never leave this package.
type Client struct {
	cfg    models.ProviderConfig
	http   *httpclient.Client
	creds  *CredentialCache
	logger *logger.ZapLogger
}

// NewClient creates a new provider client
func NewClient(cfg models.ProviderConfig, zapLogger *logger.ZapLogger) *Client {
	client := &Client{
		cfg:    cfg,
		http:   httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		logger: zapLogger,
	}
	client.creds = NewCredentialCache(time.Duration(cfg.TokenTTLHours)*time.Hour, client.authenticate)
	return client
}

// Name identifies the provider on sessions it handled.
func (c *Client) Name() string {
	return c.cfg.Name
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

// authenticate exchanges the configured credentials for a bearer token.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	headers := map[string]string{
		"x-api-key":       c.cfg.APIKey,
		"x-client-id":     c.cfg.ClientID,
		"x-client-secret": c.cfg.ClientSecret,
	}

	var resp authResponse
	if err := c.http.PostJSON(ctx, "/authenticate", headers, nil, &resp); err != nil {
		return "", classifyError(err)
	}
	if resp.AccessToken == "" {
		return "", models.NewVerificationError(models.ErrKindAuthFailed, "provider returned empty access token", nil)
	}
	return resp.AccessToken, nil
}

// requestHeaders builds the auth headers for a provider call, refreshing the
// cached token if needed.
func (c *Client) requestHeaders(ctx context.Context) (map[string]string, error) {
	token, err := c.creds.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"x-api-key":     c.cfg.APIKey,
		"Authorization": "Bearer " + token,
	}, nil
}

// classifyError maps transport and HTTP failures onto the canonical
// taxonomy. Anything without a status code is a transport failure and
// counts as unavailable.
func classifyError(err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return models.NewVerificationError(models.ErrKindUnavailable, "provider request failed", err)
	}

	switch {
	case statusErr.StatusCode == 401 || statusErr.StatusCode == 403:
		return models.NewVerificationError(models.ErrKindAuthFailed, "provider rejected credentials", err)
	case statusErr.StatusCode == 429 || statusErr.StatusCode >= 500:
		return models.NewVerificationError(models.ErrKindUnavailable, fmt.Sprintf("provider unavailable (%d)", statusErr.StatusCode), err)
	default:
		return models.NewVerificationError(models.ErrKindRejected, fmt.Sprintf("provider rejected request (%d)", statusErr.StatusCode), err)
	}
}
