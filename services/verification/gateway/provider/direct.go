package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/vericore/kyc/internal/pkg/fallback"
	"github.com/vericore/kyc/internal/pkg/models"
)

// The provider exposes several generations of its document endpoints with
// different paths and body shapes. Candidates are ordered newest first; the
// fallback executor advances only on availability failures.

type panVerifyResponse struct {
	Code int `json:"code"`
	Data struct {
		Status   string `json:"status"`
		FullName string `json:"full_name"`
		Category string `json:"category"`
	} `json:"data"`
}

type panLookupResponse struct {
	Valid          bool   `json:"valid"`
	RegisteredName string `json:"registered_name"`
}

type gstinVerifyResponse struct {
	Data struct {
		GstinStatus      string `json:"gstin_status"`
		LegalName        string `json:"legal_name"`
		PrincipalAddress string `json:"principal_address"`
	} `json:"data"`
}

type gstinLookupResponse struct {
	Status    string `json:"status"`
	TradeName string `json:"trade_name"`
	Address   string `json:"address"`
}

type cinVerifyResponse struct {
	Data struct {
		CompanyName       string `json:"company_name"`
		CompanyStatus     string `json:"company_status"`
		RegisteredAddress string `json:"registered_address"`
		IncorporationDate string `json:"date_of_incorporation"`
	} `json:"data"`
}

type aadhaarValidateResponse struct {
	Data struct {
		Status string `json:"status"`
		Gender string `json:"gender"`
		State  string `json:"state"`
	} `json:"data"`
}

// DirectCandidates returns the ordered endpoint variants for a synchronous
// document check. On success the normalized result is written into out.
func (c *Client) DirectCandidates(req *models.VerificationRequest, out *models.VerificationResult) []fallback.Candidate {
	switch req.SubjectType {
	case models.SubjectPAN:
		return c.panCandidates(req, out)
	case models.SubjectGSTIN:
		return c.gstinCandidates(req, out)
	case models.SubjectCIN:
		return c.cinCandidates(req, out)
	case models.SubjectAadhaar:
		return c.aadhaarCandidates(req, out)
	}
	return nil
}

func (c *Client) panCandidates(req *models.VerificationRequest, out *models.VerificationResult) []fallback.Candidate {
	return []fallback.Candidate{
		{
			Name: "pan-verify-v2",
			Call: func(ctx context.Context) error {
				body := map[string]string{
					"pan":             req.Identifier,
					"name_as_per_pan": req.Name,
					"consent":         "Y",
				}
				var resp panVerifyResponse
				if err := c.post(ctx, "/pan/verify", body, &resp); err != nil {
					return err
				}
				if !strings.EqualFold(resp.Data.Status, "VALID") {
					return rejected("PAN", resp.Data.Status)
				}
				*out = models.VerificationResult{
					Name:           resp.Data.FullName,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
		{
			Name: "pan-lookup-v1",
			Call: func(ctx context.Context) error {
				body := map[string]string{"number": req.Identifier}
				var resp panLookupResponse
				if err := c.post(ctx, "/api/v1/pan", body, &resp); err != nil {
					return err
				}
				if !resp.Valid {
					return rejected("PAN", "INVALID")
				}
				*out = models.VerificationResult{
					Name:           resp.RegisteredName,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
	}
}

func (c *Client) gstinCandidates(req *models.VerificationRequest, out *models.VerificationResult) []fallback.Candidate {
	return []fallback.Candidate{
		{
			Name: "gstin-verify-v2",
			Call: func(ctx context.Context) error {
				body := map[string]string{"gstin": req.Identifier}
				var resp gstinVerifyResponse
				if err := c.post(ctx, "/gstin/verify", body, &resp); err != nil {
					return err
				}
				if !strings.EqualFold(resp.Data.GstinStatus, "ACTIVE") {
					return rejected("GSTIN", resp.Data.GstinStatus)
				}
				*out = models.VerificationResult{
					Name:           resp.Data.LegalName,
					Address:        resp.Data.PrincipalAddress,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
		{
			Name: "gstin-lookup-v1",
			Call: func(ctx context.Context) error {
				body := map[string]string{"id_number": req.Identifier}
				var resp gstinLookupResponse
				if err := c.post(ctx, "/gst/gstin", body, &resp); err != nil {
					return err
				}
				if !strings.EqualFold(resp.Status, "ACTIVE") {
					return rejected("GSTIN", resp.Status)
				}
				*out = models.VerificationResult{
					Name:           resp.TradeName,
					Address:        resp.Address,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
	}
}

func (c *Client) cinCandidates(req *models.VerificationRequest, out *models.VerificationResult) []fallback.Candidate {
	return []fallback.Candidate{
		{
			Name: "cin-mca-v2",
			Call: func(ctx context.Context) error {
				body := map[string]string{"cin": req.Identifier}
				var resp cinVerifyResponse
				if err := c.post(ctx, "/mca/company/verify", body, &resp); err != nil {
					return err
				}
				if !strings.EqualFold(resp.Data.CompanyStatus, "ACTIVE") {
					return rejected("CIN", resp.Data.CompanyStatus)
				}
				*out = models.VerificationResult{
					Name:           resp.Data.CompanyName,
					Address:        resp.Data.RegisteredAddress,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
		{
			Name: "cin-corporate-v1",
			Call: func(ctx context.Context) error {
				body := map[string]string{"id_number": req.Identifier}
				var resp cinVerifyResponse
				if err := c.post(ctx, "/corporate/cin", body, &resp); err != nil {
					return err
				}
				if !strings.EqualFold(resp.Data.CompanyStatus, "ACTIVE") {
					return rejected("CIN", resp.Data.CompanyStatus)
				}
				*out = models.VerificationResult{
					Name:           resp.Data.CompanyName,
					Address:        resp.Data.RegisteredAddress,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
	}
}

func (c *Client) aadhaarCandidates(req *models.VerificationRequest, out *models.VerificationResult) []fallback.Candidate {
	// The direct Aadhaar check only confirms existence; demographics require
	// the OTP or consent method.
	return []fallback.Candidate{
		{
			Name: "aadhaar-validate-v2",
			Call: func(ctx context.Context) error {
				body := map[string]string{"aadhaar_number": req.Identifier}
				var resp aadhaarValidateResponse
				if err := c.post(ctx, "/aadhaar/validate", body, &resp); err != nil {
					return err
				}
				if !strings.EqualFold(resp.Data.Status, "VALID") {
					return rejected("aadhaar", resp.Data.Status)
				}
				*out = models.VerificationResult{
					Gender:         resp.Data.Gender,
					DocumentNumber: req.Identifier,
				}
				return nil
			},
		},
	}
}

// post wraps a provider POST with auth headers and error classification.
func (c *Client) post(ctx context.Context, endpoint string, body, result interface{}) error {
	headers, err := c.requestHeaders(ctx)
	if err != nil {
		return err
	}
	if err := c.http.PostJSON(ctx, endpoint, headers, body, result); err != nil {
		return classifyError(err)
	}
	return nil
}

// get wraps a provider GET with auth headers and error classification.
func (c *Client) get(ctx context.Context, endpoint string, result interface{}) error {
	headers, err := c.requestHeaders(ctx)
	if err != nil {
		return err
	}
	if err := c.http.GetJSON(ctx, endpoint, headers, result); err != nil {
		return classifyError(err)
	}
	return nil
}

func rejected(subject, status string) error {
	return models.NewVerificationError(models.ErrKindRejected,
		fmt.Sprintf("provider reported %s as %s", subject, strings.ToUpper(status)), nil)
}
