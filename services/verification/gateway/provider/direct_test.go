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

func runCandidates(t *testing.T, client *Client, req *models.VerificationRequest) (*models.VerificationResult, []string, error) {
	var result models.VerificationResult
	candidates := client.DirectCandidates(req, &result)
	require.NotEmpty(t, candidates)

	var tried []string
	var lastErr error
	for _, c := range candidates {
		tried = append(tried, c.Name)
		lastErr = c.Call(context.Background())
		if lastErr == nil || !models.Retryable(lastErr) {
			break
		}
	}
	return &result, tried, lastErr
}

func TestDirectCandidates_PANNormalization(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pan/verify", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ABCDE1234F", body["pan"])
		assert.Equal(t, "RAVI KUMAR", body["name_as_per_pan"])
		assert.Equal(t, "Y", body["consent"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]string{
				"status":    "VALID",
				"full_name": "RAVI KUMAR",
				"category":  "Individual",
			},
		})
	})

	result, tried, err := runCandidates(t, client, &models.VerificationRequest{
		SubjectType: models.SubjectPAN,
		Identifier:  "ABCDE1234F",
		Name:        "RAVI KUMAR",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"pan-verify-v2"}, tried)
	assert.Equal(t, "RAVI KUMAR", result.Name)
	assert.Equal(t, "ABCDE1234F", result.DocumentNumber)
}

func TestDirectCandidates_PANFallsBackToLookup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pan/verify":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/api/v1/pan":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"valid":           true,
				"registered_name": "RAVI KUMAR",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	result, tried, err := runCandidates(t, client, &models.VerificationRequest{
		SubjectType: models.SubjectPAN,
		Identifier:  "ABCDE1234F",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"pan-verify-v2", "pan-lookup-v1"}, tried)
	assert.Equal(t, "RAVI KUMAR", result.Name)
}

func TestDirectCandidates_PANRejectionIsTerminal(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pan/verify", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200,
			"data": map[string]string{"status": "INVALID"},
		})
	})

	_, tried, err := runCandidates(t, client, &models.VerificationRequest{
		SubjectType: models.SubjectPAN,
		Identifier:  "ABCDE1234F",
	})

	require.Error(t, err)
	assert.Equal(t, []string{"pan-verify-v2"}, tried)
	assert.Equal(t, models.ErrKindRejected, models.KindOf(err))
}

func TestDirectCandidates_GSTINNormalization(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/gstin/verify", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{
				"gstin_status":      "Active",
				"legal_name":        "ACME TRADERS PVT LTD",
				"principal_address": "12 MG Road, Pune",
			},
		})
	})

	result, _, err := runCandidates(t, client, &models.VerificationRequest{
		SubjectType: models.SubjectGSTIN,
		Identifier:  "27ABCDE1234F1Z5",
	})

	require.NoError(t, err)
	assert.Equal(t, "ACME TRADERS PVT LTD", result.Name)
	assert.Equal(t, "12 MG Road, Pune", result.Address)
	assert.Equal(t, "27ABCDE1234F1Z5", result.DocumentNumber)
}

func TestDirectCandidates_CINInactiveRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mca/company/verify", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{
				"company_name":   "DEFUNCT CO LTD",
				"company_status": "STRIKE_OFF",
			},
		})
	})

	_, _, err := runCandidates(t, client, &models.VerificationRequest{
		SubjectType: models.SubjectCIN,
		Identifier:  "U12345MH2010PTC123456",
	})

	require.Error(t, err)
	assert.Equal(t, models.ErrKindRejected, models.KindOf(err))
	assert.Contains(t, err.Error(), "STRIKE_OFF")
}

func TestDirectCandidates_AadhaarExistenceOnly(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/aadhaar/validate", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{
				"status": "VALID",
				"gender": "M",
				"state":  "Maharashtra",
			},
		})
	})

	result, tried, err := runCandidates(t, client, &models.VerificationRequest{
		SubjectType: models.SubjectAadhaar,
		Identifier:  "234567890123",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"aadhaar-validate-v2"}, tried)
	assert.Equal(t, "M", result.Gender)
	assert.Empty(t, result.Name)
}
