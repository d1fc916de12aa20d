package provider

import (
	"context"
	"strings"

	"github.com/vericore/kyc/internal/pkg/fallback"
	"github.com/vericore/kyc/internal/pkg/models"
)

type otpDispatchResponse struct {
	Data struct {
		RefID string `json:"ref_id"`
	} `json:"data"`
	// Older endpoint generation returns the id at the top level.
	ReferenceID string `json:"reference_id"`
}

func (r *otpDispatchResponse) ref() string {
	if r.Data.RefID != "" {
		return r.Data.RefID
	}
	return r.ReferenceID
}

type otpVerifyResponse struct {
	Data struct {
		Status      string `json:"status"`
		Name        string `json:"name"`
		DateOfBirth string `json:"dob"`
		YearOfBirth string `json:"year_of_birth"`
		Gender      string `json:"gender"`
		FullAddress string `json:"full_address"`
		ShareCode   string `json:"share_code"`
	} `json:"data"`
}

// OTPDispatchCandidates returns the endpoint variants for delivering an OTP
// code to the Aadhaar-linked mobile. On success the provider-issued id is
// written into providerRef.
func (c *Client) OTPDispatchCandidates(aadhaarNumber, referenceID, code string, providerRef *string) []fallback.Candidate {
	return []fallback.Candidate{
		{
			Name: "aadhaar-otp-v2",
			Call: func(ctx context.Context) error {
				body := map[string]string{
					"aadhaar_number":  aadhaarNumber,
					"verification_id": referenceID,
					"otp":             code,
					"consent":         "Y",
				}
				var resp otpDispatchResponse
				if err := c.post(ctx, "/aadhaar/okyc/otp", body, &resp); err != nil {
					return err
				}
				if resp.ref() == "" {
					return models.NewVerificationError(models.ErrKindUnknown, "provider returned no OTP reference", nil)
				}
				*providerRef = resp.ref()
				return nil
			},
		},
		{
			Name: "aadhaar-otp-v1",
			Call: func(ctx context.Context) error {
				body := map[string]string{
					"aadhaar_number": aadhaarNumber,
					"reference_id":   referenceID,
					"otp":            code,
				}
				var resp otpDispatchResponse
				if err := c.post(ctx, "/aadhaar/generate-otp", body, &resp); err != nil {
					return err
				}
				if resp.ref() == "" {
					return models.NewVerificationError(models.ErrKindUnknown, "provider returned no OTP reference", nil)
				}
				*providerRef = resp.ref()
				return nil
			},
		},
	}
}

// VerifyOTP submits a code for a previously dispatched challenge and
// normalizes the demographic payload.
func (c *Client) VerifyOTP(ctx context.Context, providerRef, code string) (*models.VerificationResult, error) {
	body := map[string]string{
		"ref_id": providerRef,
		"otp":    code,
	}
	var resp otpVerifyResponse
	if err := c.post(ctx, "/aadhaar/okyc/otp/verify", body, &resp); err != nil {
		return nil, err
	}
	if !strings.EqualFold(resp.Data.Status, "VALID") {
		return nil, models.NewVerificationError(models.ErrKindRejected,
			"provider rejected the OTP verification", nil)
	}

	return &models.VerificationResult{
		Name:        resp.Data.Name,
		DateOfBirth: resp.Data.DateOfBirth,
		YearOfBirth: resp.Data.YearOfBirth,
		Gender:      resp.Data.Gender,
		Address:     resp.Data.FullAddress,
		ShareCode:   resp.Data.ShareCode,
	}, nil
}
