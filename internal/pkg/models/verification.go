package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SubjectType identifies the kind of document being verified.
type SubjectType string

const (
	SubjectAadhaar SubjectType = "aadhaar"
	SubjectPAN     SubjectType = "pan"
	SubjectGSTIN   SubjectType = "gstin"
	SubjectCIN     SubjectType = "cin"
)

// ParseSubjectType validates a caller-supplied subject type string.
func ParseSubjectType(s string) (SubjectType, error) {
	switch SubjectType(s) {
	case SubjectAadhaar, SubjectPAN, SubjectGSTIN, SubjectCIN:
		return SubjectType(s), nil
	}
	return "", ValidationError(fmt.Sprintf("unsupported subject type: %q", s))
}

// VerificationMethod identifies which protocol drives a verification attempt.
type VerificationMethod string

const (
	MethodDirect  VerificationMethod = "direct"
	MethodOTP     VerificationMethod = "otp"
	MethodConsent VerificationMethod = "consent"
)

// VerificationRequest is the canonical request handed to a provider adapter.
type VerificationRequest struct {
	SubjectType SubjectType `json:"subject_type"`
	Identifier  string      `json:"identifier"`
	Name        string      `json:"name,omitempty"`
	Mobile      string      `json:"mobile,omitempty"`
}

// VerificationResult holds the normalized fields of a verified document.
// Provider-specific response shapes never leave the gateway layer.
type VerificationResult struct {
	Name           string `json:"name,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	YearOfBirth    string `json:"year_of_birth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Address        string `json:"address,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	ShareCode      string `json:"share_code,omitempty"`
}

// Value implements driver.Valuer so the result can be stored as JSONB.
func (r VerificationResult) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB columns.
func (r *VerificationResult) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		return nil
	}
	return fmt.Errorf("unsupported scan type for VerificationResult: %T", src)
}

// ConsentStatus is the canonical view of a provider's consent-flow state.
type ConsentStatus string

const (
	ConsentPending       ConsentStatus = "PENDING"
	ConsentAuthenticated ConsentStatus = "AUTHENTICATED"
	ConsentSuccess       ConsentStatus = "SUCCESS"
	ConsentExpired       ConsentStatus = "EXPIRED"
	ConsentDenied        ConsentStatus = "CONSENT_DENIED"
)

// ConsentInitiation is returned by the provider when a consent request is
// registered.
type ConsentInitiation struct {
	ProviderRef string `json:"provider_ref"`
	ConsentURL  string `json:"consent_url"`
}

// VerifyDocumentRequest is the HTTP payload for direct verification.
type VerifyDocumentRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Name       string `json:"name,omitempty"`
}

// OTPGenerateRequest is the HTTP payload to start the Aadhaar OTP flow.
type OTPGenerateRequest struct {
	AadhaarNumber string `json:"aadhaar_number" validate:"required"`
}

// OTPVerifyRequest is the HTTP payload to submit an OTP code.
type OTPVerifyRequest struct {
	ReferenceID string `json:"reference_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// ConsentCreateRequest is the HTTP payload to start the consent flow.
type ConsentCreateRequest struct {
	SubjectType string `json:"subject_type" validate:"required"`
	Identifier  string `json:"identifier" validate:"required"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// ConsentCreateResponse carries the redirect URL the subject completes
// out-of-band.
type ConsentCreateResponse struct {
	ReferenceID string `json:"reference_id"`
	ConsentURL  string `json:"consent_url"`
	ExpiresAt   int64  `json:"expires_at"`
}

// SessionStatusResponse is the HTTP representation of a session's state.
type SessionStatusResponse struct {
	ReferenceID string              `json:"reference_id"`
	Status      VerificationStatus  `json:"status"`
	Verified    bool                `json:"verified"`
	Result      *VerificationResult `json:"result,omitempty"`
	VerifiedAt  *time.Time          `json:"verified_at,omitempty"`
	LastError   string              `json:"last_error,omitempty"`
}

// NewSessionStatusResponse builds the client-facing view of a session.
func NewSessionStatusResponse(s *VerificationSession) *SessionStatusResponse {
	resp := &SessionStatusResponse{
		ReferenceID: s.ReferenceID,
		Status:      s.EffectiveStatus(time.Now()),
		Verified:    s.Status == StatusVerified,
		LastError:   s.LastError,
	}
	if s.Status == StatusVerified {
		resp.Result = s.ResultPayload
		resp.VerifiedAt = s.VerifiedAt
	}
	return resp
}

// WebhookEvent is the inbound provider push notification.
type WebhookEvent struct {
	EventType string           `json:"event_type"`
	Type      string           `json:"type"`
	Data      WebhookEventData `json:"data"`
}

// WebhookEventData carries the correlation ids and status of a webhook event.
type WebhookEventData struct {
	VerificationID string              `json:"verification_id"`
	ReferenceID    string              `json:"reference_id"`
	Status         string              `json:"status"`
	UserDetails    *VerificationResult `json:"user_details,omitempty"`
}

// Kind returns the event type, tolerating both field spellings providers use.
func (e *WebhookEvent) Kind() string {
	if e.EventType != "" {
		return e.EventType
	}
	return e.Type
}

// WebhookAck is always returned with HTTP 200, even when internal processing
// failed, so the provider never retries delivery indefinitely.
type WebhookAck struct {
	Success   bool      `json:"success"`
	Received  bool      `json:"received"`
	Timestamp time.Time `json:"timestamp"`
}

// CompletionEvent is published for the account-approval subsystem when a
// session reaches a terminal state.
type CompletionEvent struct {
	ReferenceID string              `json:"reference_id"`
	SubjectType SubjectType         `json:"subject_type"`
	Method      VerificationMethod  `json:"method"`
	Status      VerificationStatus  `json:"status"`
	Result      *VerificationResult `json:"result,omitempty"`
	VerifiedAt  *time.Time          `json:"verified_at,omitempty"`
	CompletedAt time.Time           `json:"completed_at"`
}
