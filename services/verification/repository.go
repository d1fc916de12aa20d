package verification

import (
	"context"
	"time"

	"github.com/vericore/kyc/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vericore/kyc/services/verification SessionRepo,OTPRepo

// SessionRepo is the durable store of verification sessions. Sessions are
// never deleted; expiry is a status value so the audit trail survives.
type SessionRepo interface {
	// CreateSession stores a new session and expires any live session for
	// the same (subjectType, identifierHash) pair in the same transaction.
	CreateSession(ctx context.Context, session *models.VerificationSession) error

	GetByReferenceID(ctx context.Context, referenceID string) (*models.VerificationSession, error)

	// GetByProviderRef looks a session up by the provider-issued id. It is
	// a non-authoritative secondary index consulted only by the webhook
	// reconciler.
	GetByProviderRef(ctx context.Context, providerRef string) (*models.VerificationSession, error)

	// TransitionStatus applies a conditional status update: it succeeds only
	// if the stored status still equals from, so concurrent writers cannot
	// double-apply a transition. Returns false when the precondition failed.
	TransitionStatus(ctx context.Context, referenceID string, from, to models.VerificationStatus, update *models.SessionUpdate) (bool, error)

	// RecordAttempt persists the fallback chain's diagnostic trail.
	RecordAttempt(ctx context.Context, referenceID string, attemptCount int, lastError string) error

	// SetProviderRef stores the provider-issued id for webhook correlation.
	SetProviderRef(ctx context.Context, referenceID, providerRef string) error
}

// OTPRepo stores one-time codes with a bounded lifetime.
type OTPRepo interface {
	StoreCode(ctx context.Context, referenceID, code string, ttl time.Duration) error
	GetCode(ctx context.Context, referenceID string) (string, error)
	DeleteCode(ctx context.Context, referenceID string) error

	// IncrementAttempts counts code submissions for a reference so brute
	// forcing can be cut off. The counter shares the code's TTL.
	IncrementAttempts(ctx context.Context, referenceID string, ttl time.Duration) (int64, error)
}
