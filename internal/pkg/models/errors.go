package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies verification failures so callers can decide whether
// to retry, surface, or swallow an error.
type ErrorKind string

const (
	// ErrKindValidation indicates malformed caller input. Never retried.
	ErrKindValidation ErrorKind = "VALIDATION_ERROR"
	// ErrKindUnavailable indicates a transport-level or 5xx provider failure.
	// The fallback chain may advance to the next candidate.
	ErrKindUnavailable ErrorKind = "PROVIDER_UNAVAILABLE"
	// ErrKindRejected indicates the provider examined the document and
	// declared it invalid. Terminal, never retried.
	ErrKindRejected ErrorKind = "PROVIDER_REJECTED"
	// ErrKindAuthFailed indicates bad provider credentials. Terminal and
	// configuration-level.
	ErrKindAuthFailed ErrorKind = "AUTHENTICATION_FAILURE"
	// ErrKindConsentDenied indicates the subject declined the consent flow.
	ErrKindConsentDenied ErrorKind = "CONSENT_DENIED"
	// ErrKindExpired indicates a TTL elapsed before completion.
	ErrKindExpired ErrorKind = "EXPIRED"
	// ErrKindMismatch indicates a submitted OTP code did not match.
	ErrKindMismatch ErrorKind = "MISMATCH"
	// ErrKindNotFound indicates no session exists for the given reference.
	ErrKindNotFound ErrorKind = "NOT_FOUND"
	// ErrKindUnknown covers unclassifiable provider responses.
	ErrKindUnknown ErrorKind = "UNKNOWN"
)

// VerificationError is the canonical error type crossing component
// boundaries. Provider-specific details stay in the wrapped error.
type VerificationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// NewVerificationError creates a VerificationError wrapping an optional cause.
func NewVerificationError(kind ErrorKind, message string, cause error) *VerificationError {
	return &VerificationError{Kind: kind, Message: message, Err: cause}
}

// ValidationError is shorthand for a caller-input error.
func ValidationError(message string) *VerificationError {
	return &VerificationError{Kind: ErrKindValidation, Message: message}
}

// KindOf extracts the ErrorKind from an error chain, defaulting to unknown.
func KindOf(err error) ErrorKind {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ErrKindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the fallback chain may advance to the next
// candidate after this error. Only availability failures qualify; a rejected
// document stays rejected no matter which endpoint variant is asked.
func Retryable(err error) bool {
	return KindOf(err) == ErrKindUnavailable
}
