package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vericore/kyc/internal/pkg/fallback"
	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
	"github.com/vericore/kyc/services/verification"
)

// VerificationUC implements the verification usecase operations. It owns all
// session state transitions; repositories and gateways never decide status.
type VerificationUC struct {
	cfg         *models.Config
	sessionRepo verification.SessionRepo
	otpRepo     verification.OTPRepo
	providerGW  verification.ProviderGW
	eventsGW    verification.EventsGW
	executor    *fallback.Executor
	logger      *logger.ZapLogger
	now         func() time.Time
}

// NewVerificationUC creates a new verification usecase
func NewVerificationUC(
	cfg *models.Config,
	sessionRepo verification.SessionRepo,
	otpRepo verification.OTPRepo,
	providerGW verification.ProviderGW,
	eventsGW verification.EventsGW,
	zapLogger *logger.ZapLogger,
) *VerificationUC {
	return &VerificationUC{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		otpRepo:     otpRepo,
		providerGW:  providerGW,
		eventsGW:    eventsGW,
		executor:    fallback.New(fallback.Config{MaxAttempts: cfg.Provider.MaxAttempts}, zapLogger),
		logger:      zapLogger,
		now:         time.Now,
	}
}

// newSession builds an INITIATED session for a normalized identifier.
func (uc *VerificationUC) newSession(method models.VerificationMethod, subjectType models.SubjectType, identifier string, ttl time.Duration) *models.VerificationSession {
	now := uc.now()
	return &models.VerificationSession{
		ID:             uuid.New(),
		ReferenceID:    utils.BuildReferenceID(method, identifier),
		Method:         method,
		SubjectType:    subjectType,
		Identifier:     identifier,
		IdentifierHash: utils.IdentifierHash(identifier),
		Status:         models.StatusInitiated,
		Provider:       uc.providerGW.Name(),
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
}

// attemptRecorder persists the fallback chain's diagnostic trail as it grows.
func (uc *VerificationUC) attemptRecorder(referenceID string) fallback.OnAttempt {
	return func(attempt int, candidate string, err error) {
		lastError := ""
		if err != nil {
			lastError = candidate + ": " + err.Error()
		}
		if rerr := uc.sessionRepo.RecordAttempt(context.Background(), referenceID, attempt, lastError); rerr != nil {
			uc.logger.Warn("Failed to record fallback attempt",
				logger.String("reference_id", referenceID),
				logger.Int("attempt", attempt),
				logger.Err(rerr))
		}
	}
}

// publishCompletion announces a terminal outcome. Publish failures are
// logged, not surfaced: the session row is the source of truth and the
// consumer can always re-read it.
func (uc *VerificationUC) publishCompletion(ctx context.Context, session *models.VerificationSession) {
	event := &models.CompletionEvent{
		ReferenceID: session.ReferenceID,
		SubjectType: session.SubjectType,
		Method:      session.Method,
		Status:      session.Status,
		Result:      session.ResultPayload,
		VerifiedAt:  session.VerifiedAt,
		CompletedAt: uc.now(),
	}
	if err := uc.eventsGW.PublishVerificationCompleted(ctx, event); err != nil {
		uc.logger.Error("Failed to publish completion event",
			logger.String("reference_id", session.ReferenceID),
			logger.String("status", string(session.Status)),
			logger.Err(err))
	}
}

// failSession moves a session to FAILED recording the cause, then announces
// the terminal outcome. A lost transition race means another writer already
// settled the session, which is fine.
func (uc *VerificationUC) failSession(ctx context.Context, session *models.VerificationSession, from models.VerificationStatus, cause error) {
	if !models.CanTransition(from, models.StatusFailed) {
		uc.logger.Warn("Refusing FAILED transition outside the state graph",
			logger.String("reference_id", session.ReferenceID),
			logger.String("from", string(from)))
		return
	}
	msg := cause.Error()
	ok, err := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, from, models.StatusFailed, &models.SessionUpdate{LastError: &msg})
	if err != nil {
		uc.logger.Error("Failed to persist FAILED transition",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(err))
		return
	}
	if !ok {
		return
	}
	session.Status = models.StatusFailed
	session.LastError = msg
	uc.publishCompletion(ctx, session)
}

// expireSession persists lazy expiry for a non-terminal session past its
// deadline.
func (uc *VerificationUC) expireSession(ctx context.Context, session *models.VerificationSession) {
	if !models.CanTransition(session.Status, models.StatusExpired) {
		return
	}
	ok, err := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, session.Status, models.StatusExpired, nil)
	if err != nil {
		uc.logger.Warn("Failed to persist session expiry",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(err))
		return
	}
	if ok {
		session.Status = models.StatusExpired
	}
}
