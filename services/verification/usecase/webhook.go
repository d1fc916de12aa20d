package usecase

import (
	"context"
	"strings"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
)

// ReconcileWebhookEvent applies a provider push notification to the session
// it correlates with. Unknown sessions, duplicate deliveries and invalid
// forward moves are acknowledged no-ops; the conditional transition
// discipline makes replays harmless.
func (uc *VerificationUC) ReconcileWebhookEvent(ctx context.Context, event *models.WebhookEvent) error {
	session, err := uc.lookupWebhookSession(ctx, event)
	if err != nil {
		if models.IsKind(err, models.ErrKindNotFound) {
			uc.logger.Warn("Webhook for unknown session acknowledged",
				logger.String("event_type", event.Kind()),
				logger.String("verification_id", event.Data.VerificationID),
				logger.String("provider_ref", event.Data.ReferenceID))
			return nil
		}
		return err
	}

	if session.Status.IsTerminal() {
		uc.logger.Debug("Webhook for settled session ignored",
			logger.String("reference_id", session.ReferenceID),
			logger.String("status", string(session.Status)))
		return nil
	}

	switch strings.ToUpper(event.Data.Status) {
	case "AUTHENTICATED", "APPROVED":
		uc.advanceToAuthenticated(ctx, session)
		uc.attemptDocumentFetch(ctx, session)

	case "SUCCESS", "COMPLETED", "VERIFIED":
		uc.completeFromWebhook(ctx, session, event.Data.UserDetails)

	case "EXPIRED":
		uc.expireSession(ctx, session)

	case "DENIED", "REJECTED", "CONSENT_DENIED":
		if !models.CanTransition(session.Status, models.StatusConsentDenied) {
			uc.logger.Warn("Consent-denial webhook for non-consent session acknowledged",
				logger.String("reference_id", session.ReferenceID),
				logger.String("method", string(session.Method)),
				logger.String("status", string(session.Status)))
			return nil
		}
		ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, session.Status, models.StatusConsentDenied, nil)
		if terr != nil {
			return terr
		}
		if ok {
			session.Status = models.StatusConsentDenied
			uc.publishCompletion(ctx, session)
		}

	case "FAILED", "ERROR":
		uc.failSession(ctx, session, session.Status,
			models.NewVerificationError(models.ErrKindRejected, "provider reported verification failure", nil))

	default:
		uc.logger.Warn("Webhook with unrecognized status acknowledged",
			logger.String("reference_id", session.ReferenceID),
			logger.String("event_status", event.Data.Status))
	}

	return nil
}

// lookupWebhookSession correlates an event to a session: first by our
// reference id carried in verification_id, then by the provider-issued id.
func (uc *VerificationUC) lookupWebhookSession(ctx context.Context, event *models.WebhookEvent) (*models.VerificationSession, error) {
	if event.Data.VerificationID != "" {
		session, err := uc.sessionRepo.GetByReferenceID(ctx, event.Data.VerificationID)
		if err == nil {
			return session, nil
		}
		if !models.IsKind(err, models.ErrKindNotFound) {
			return nil, err
		}
	}
	if event.Data.ReferenceID != "" {
		return uc.sessionRepo.GetByProviderRef(ctx, event.Data.ReferenceID)
	}
	return nil, models.NewVerificationError(models.ErrKindNotFound, "webhook event carries no correlation id", nil)
}

func (uc *VerificationUC) advanceToAuthenticated(ctx context.Context, session *models.VerificationSession) {
	if session.Status != models.StatusAwaitingConsent {
		return
	}
	ok, err := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusAwaitingConsent, models.StatusAuthenticated, nil)
	if err != nil {
		uc.logger.Error("Failed to persist AUTHENTICATED transition",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(err))
		return
	}
	if ok {
		session.Status = models.StatusAuthenticated
	}
}

// completeFromWebhook settles a session the provider says succeeded. When
// the event carries the document payload it is used directly; otherwise the
// consent document is fetched.
func (uc *VerificationUC) completeFromWebhook(ctx context.Context, session *models.VerificationSession, details *models.VerificationResult) {
	if session.Method == models.MethodConsent {
		uc.advanceToAuthenticated(ctx, session)
		if details == nil {
			uc.attemptDocumentFetch(ctx, session)
			return
		}
		if session.Status != models.StatusAuthenticated {
			return
		}
		ok, err := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusAuthenticated, models.StatusDocumentFetched, nil)
		if err != nil || !ok {
			return
		}
		session.Status = models.StatusDocumentFetched
	}

	if details == nil {
		uc.logger.Warn("Success webhook without payload ignored",
			logger.String("reference_id", session.ReferenceID),
			logger.String("method", string(session.Method)))
		return
	}
	if !models.CanTransition(session.Status, models.StatusVerified) {
		return
	}

	verifiedAt := uc.now()
	ok, err := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, session.Status, models.StatusVerified,
		&models.SessionUpdate{ResultPayload: details, VerifiedAt: &verifiedAt})
	if err != nil {
		uc.logger.Error("Failed to persist webhook verification result",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(err))
		return
	}
	if !ok {
		return
	}
	session.Status = models.StatusVerified
	session.ResultPayload = details
	session.VerifiedAt = &verifiedAt
	uc.publishCompletion(ctx, session)
}
