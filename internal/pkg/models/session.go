package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is the state of a verification session. Transitions
// only move forward through the graph below; a session is never reset in
// place, a new session supersedes it instead.
type VerificationStatus string

const (
	StatusInitiated       VerificationStatus = "INITIATED"
	StatusOTPSent         VerificationStatus = "OTP_SENT"
	StatusAwaitingConsent VerificationStatus = "AWAITING_CONSENT"
	StatusAuthenticated   VerificationStatus = "AUTHENTICATED"
	StatusDocumentFetched VerificationStatus = "DOCUMENT_FETCHED"
	StatusVerified        VerificationStatus = "VERIFIED"
	StatusConsentDenied   VerificationStatus = "CONSENT_DENIED"
	StatusExpired         VerificationStatus = "EXPIRED"
	StatusFailed          VerificationStatus = "FAILED"
)

// transitions is the forward edge set of the session state machine.
var transitions = map[VerificationStatus][]VerificationStatus{
	StatusInitiated:       {StatusOTPSent, StatusAwaitingConsent, StatusVerified, StatusFailed, StatusExpired},
	StatusOTPSent:         {StatusVerified, StatusFailed, StatusExpired},
	StatusAwaitingConsent: {StatusAuthenticated, StatusConsentDenied, StatusExpired, StatusFailed},
	StatusAuthenticated:   {StatusDocumentFetched, StatusExpired, StatusFailed},
	StatusDocumentFetched: {StatusVerified, StatusFailed},
}

// CanTransition reports whether moving from one status to another is a valid
// forward step. Terminal states have no outgoing edges.
func CanTransition(from, to VerificationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status ends the session lifecycle.
func (s VerificationStatus) IsTerminal() bool {
	switch s {
	case StatusVerified, StatusConsentDenied, StatusExpired, StatusFailed:
		return true
	}
	return false
}

// VerificationSession is the durable record of one verification attempt.
// It is the single source of truth consulted by polling, webhooks and the
// result consumer; expiry is a status value, never a row deletion.
type VerificationSession struct {
	ID             uuid.UUID           `json:"id" db:"id"`
	ReferenceID    string              `json:"reference_id" db:"reference_id"`
	Method         VerificationMethod  `json:"method" db:"method"`
	SubjectType    SubjectType         `json:"subject_type" db:"subject_type"`
	Identifier     string              `json:"identifier" db:"identifier"`
	IdentifierHash string              `json:"-" db:"identifier_hash"`
	Status         VerificationStatus  `json:"status" db:"status"`
	Provider       string              `json:"provider" db:"provider"`
	ProviderRef    string              `json:"provider_ref,omitempty" db:"provider_ref"`
	AttemptCount   int                 `json:"attempt_count" db:"attempt_count"`
	LastError      string              `json:"last_error,omitempty" db:"last_error"`
	ResultPayload  *VerificationResult `json:"result_payload,omitempty" db:"result_payload"`
	VerifiedAt     *time.Time          `json:"verified_at,omitempty" db:"verified_at"`
	CreatedAt      time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" db:"updated_at"`
	ExpiresAt      time.Time           `json:"expires_at" db:"expires_at"`
}

// EffectiveStatus applies lazy expiry: a non-terminal session past its
// deadline reads as EXPIRED whether or not a sweep has persisted it yet.
func (s *VerificationSession) EffectiveStatus(now time.Time) VerificationStatus {
	if !s.Status.IsTerminal() && now.After(s.ExpiresAt) {
		return StatusExpired
	}
	return s.Status
}

// SessionUpdate carries the optional mutations applied together with a
// status transition. Nil fields leave the stored value untouched.
type SessionUpdate struct {
	ResultPayload *VerificationResult
	ProviderRef   *string
	LastError     *string
	VerifiedAt    *time.Time
}
