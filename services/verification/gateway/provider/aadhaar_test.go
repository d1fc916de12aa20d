package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/kyc/internal/pkg/models"
)

func TestOTPDispatchCandidates_WritesProviderRef(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/aadhaar/okyc/otp", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "234567890123", body["aadhaar_number"])
		assert.Equal(t, "otp_a1b2c3d4e5f6_1", body["verification_id"])
		assert.Equal(t, "482913", body["otp"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"ref_id": "prov-ref-777"},
		})
	})

	var providerRef string
	candidates := client.OTPDispatchCandidates("234567890123", "otp_a1b2c3d4e5f6_1", "482913", &providerRef)
	require.Len(t, candidates, 2)

	err := candidates[0].Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "prov-ref-777", providerRef)
}

func TestOTPDispatchCandidates_LegacyEndpointShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/aadhaar/generate-otp", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"reference_id": "legacy-ref-42"})
	})

	var providerRef string
	candidates := client.OTPDispatchCandidates("234567890123", "otp_a1b2c3d4e5f6_1", "482913", &providerRef)

	err := candidates[1].Call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "legacy-ref-42", providerRef)
}

func TestOTPDispatchCandidates_MissingRef(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]string{}})
	})

	var providerRef string
	candidates := client.OTPDispatchCandidates("234567890123", "otp_a1b2c3d4e5f6_1", "482913", &providerRef)

	err := candidates[0].Call(context.Background())
	require.Error(t, err)
	assert.Empty(t, providerRef)
}

func TestVerifyOTP_NormalizesDemographics(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/aadhaar/okyc/otp/verify", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "prov-ref-777", body["ref_id"])
		assert.Equal(t, "482913", body["otp"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{
				"status":        "VALID",
				"name":          "RAVI KUMAR",
				"dob":           "1990-04-21",
				"year_of_birth": "1990",
				"gender":        "M",
				"full_address":  "12 MG Road, Pune, Maharashtra",
				"share_code":    "XX34",
			},
		})
	})

	result, err := client.VerifyOTP(context.Background(), "prov-ref-777", "482913")

	require.NoError(t, err)
	assert.Equal(t, "RAVI KUMAR", result.Name)
	assert.Equal(t, "1990-04-21", result.DateOfBirth)
	assert.Equal(t, "1990", result.YearOfBirth)
	assert.Equal(t, "M", result.Gender)
	assert.Equal(t, "12 MG Road, Pune, Maharashtra", result.Address)
	assert.Equal(t, "XX34", result.ShareCode)
}

func TestVerifyOTP_ProviderRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"status": "INVALID"},
		})
	})

	result, err := client.VerifyOTP(context.Background(), "prov-ref-777", "000000")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, models.ErrKindRejected, models.KindOf(err))
}
