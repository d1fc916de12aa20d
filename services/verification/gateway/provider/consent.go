package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/vericore/kyc/internal/pkg/models"
)

type consentCreateResponse struct {
	Data struct {
		ConsentID  string `json:"consent_id"`
		ConsentURL string `json:"consent_url"`
	} `json:"data"`
}

type consentStatusResponse struct {
	Data struct {
		Status string `json:"status"`
	} `json:"data"`
}

type consentDocumentResponse struct {
	Data struct {
		Name        string `json:"name"`
		DateOfBirth string `json:"dob"`
		Gender      string `json:"gender"`
		FullAddress string `json:"full_address"`
		ShareCode   string `json:"share_code"`
		DocumentRef string `json:"document_ref"`
	} `json:"data"`
}

// CreateConsentRequest registers a consent transaction and returns the URL
// the subject must visit to approve it.
func (c *Client) CreateConsentRequest(ctx context.Context, referenceID, redirectURL string) (*models.ConsentInitiation, error) {
	body := map[string]string{
		"verification_id": referenceID,
		"redirect_url":    redirectURL,
	}
	var resp consentCreateResponse
	if err := c.post(ctx, "/consent/request", body, &resp); err != nil {
		return nil, err
	}
	if resp.Data.ConsentID == "" || resp.Data.ConsentURL == "" {
		return nil, models.NewVerificationError(models.ErrKindUnknown, "provider returned incomplete consent initiation", nil)
	}
	return &models.ConsentInitiation{
		ProviderRef: resp.Data.ConsentID,
		ConsentURL:  resp.Data.ConsentURL,
	}, nil
}

// GetConsentStatus polls the provider for the state of a consent transaction.
func (c *Client) GetConsentStatus(ctx context.Context, providerRef string) (models.ConsentStatus, error) {
	var resp consentStatusResponse
	if err := c.get(ctx, fmt.Sprintf("/consent/%s/status", providerRef), &resp); err != nil {
		return "", err
	}

	switch strings.ToUpper(resp.Data.Status) {
	case "PENDING", "CREATED":
		return models.ConsentPending, nil
	case "AUTHENTICATED", "APPROVED":
		return models.ConsentAuthenticated, nil
	case "SUCCESS", "COMPLETED":
		return models.ConsentSuccess, nil
	case "EXPIRED":
		return models.ConsentExpired, nil
	case "DENIED", "REJECTED":
		return models.ConsentDenied, nil
	default:
		return "", models.NewVerificationError(models.ErrKindUnknown,
			fmt.Sprintf("provider returned unrecognized consent status %q", resp.Data.Status), nil)
	}
}

// FetchConsentDocument downloads the approved document for an authenticated
// consent transaction and normalizes the demographics.
func (c *Client) FetchConsentDocument(ctx context.Context, providerRef string) (*models.VerificationResult, error) {
	var resp consentDocumentResponse
	if err := c.get(ctx, fmt.Sprintf("/consent/%s/document", providerRef), &resp); err != nil {
		return nil, err
	}
	if resp.Data.Name == "" {
		return nil, models.NewVerificationError(models.ErrKindUnknown, "provider returned empty consent document", nil)
	}
	return &models.VerificationResult{
		Name:           resp.Data.Name,
		DateOfBirth:    resp.Data.DateOfBirth,
		Gender:         resp.Data.Gender,
		Address:        resp.Data.FullAddress,
		ShareCode:      resp.Data.ShareCode,
		DocumentNumber: resp.Data.DocumentRef,
	}, nil
}
