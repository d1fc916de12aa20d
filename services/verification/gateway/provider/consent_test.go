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

func TestCreateConsentRequest(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/consent/request", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "consent_a1b2c3d4e5f6_1", body["verification_id"])
		assert.Equal(t, "https://app.example.com/callback?state=tok", body["redirect_url"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{
				"consent_id":  "consent-555",
				"consent_url": "https://provider.example.com/consent/consent-555",
			},
		})
	})

	initiation, err := client.CreateConsentRequest(context.Background(),
		"consent_a1b2c3d4e5f6_1", "https://app.example.com/callback?state=tok")

	require.NoError(t, err)
	assert.Equal(t, "consent-555", initiation.ProviderRef)
	assert.Equal(t, "https://provider.example.com/consent/consent-555", initiation.ConsentURL)
}

func TestCreateConsentRequest_IncompleteResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"consent_id": "consent-555"},
		})
	})

	initiation, err := client.CreateConsentRequest(context.Background(), "consent_a1b2c3d4e5f6_1", "")

	require.Error(t, err)
	assert.Nil(t, initiation)
}

func TestGetConsentStatus_Mapping(t *testing.T) {
	testCases := []struct {
		provider string
		expected models.ConsentStatus
	}{
		{"PENDING", models.ConsentPending},
		{"created", models.ConsentPending},
		{"AUTHENTICATED", models.ConsentAuthenticated},
		{"approved", models.ConsentAuthenticated},
		{"SUCCESS", models.ConsentSuccess},
		{"COMPLETED", models.ConsentSuccess},
		{"EXPIRED", models.ConsentExpired},
		{"DENIED", models.ConsentDenied},
		{"rejected", models.ConsentDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.provider, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/consent/consent-555/status", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"data": map[string]string{"status": tc.provider},
				})
			})

			status, err := client.GetConsentStatus(context.Background(), "consent-555")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestGetConsentStatus_UnrecognizedStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"status": "LIMBO"},
		})
	})

	_, err := client.GetConsentStatus(context.Background(), "consent-555")
	require.Error(t, err)
	assert.Equal(t, models.ErrKindUnknown, models.KindOf(err))
}

func TestFetchConsentDocument(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/consent/consent-555/document", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{
				"name":         "RAVI KUMAR",
				"dob":          "1990-04-21",
				"gender":       "M",
				"full_address": "12 MG Road, Pune",
				"share_code":   "XX34",
				"document_ref": "doc-991",
			},
		})
	})

	result, err := client.FetchConsentDocument(context.Background(), "consent-555")

	require.NoError(t, err)
	assert.Equal(t, "RAVI KUMAR", result.Name)
	assert.Equal(t, "doc-991", result.DocumentNumber)
}

func TestFetchConsentDocument_EmptyDocument(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{},
		})
	})

	result, err := client.FetchConsentDocument(context.Background(), "consent-555")

	require.Error(t, err)
	assert.Nil(t, result)
}
