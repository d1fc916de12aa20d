package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	jwtpkg "github.com/vericore/kyc/internal/pkg/jwt"
	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

// CreateConsentSession registers a consent-flow verification and returns the
// URL the subject must visit. The redirect carries a signed state token so
// the callback can be tied to the session without trusting query params.
func (uc *VerificationUC) CreateConsentSession(ctx context.Context, subjectType models.SubjectType, identifier, redirectURL string) (*models.ConsentCreateResponse, error) {
	normalized, err := utils.NormalizeIdentifier(subjectType, identifier)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.cfg.Consent.SessionTTLMinutes) * time.Minute
	session := uc.newSession(models.MethodConsent, subjectType, normalized, ttl)
	if err := uc.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create verification session: %w", err)
	}

	stateToken, _, err := jwtpkg.GenerateStateToken(session.ReferenceID, uc.cfg.Consent.StateSecret, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign consent state token: %w", err)
	}

	initiation, err := uc.providerGW.CreateConsentRequest(ctx, session.ReferenceID, callbackWithState(redirectURL, stateToken))
	if err != nil {
		uc.failSession(ctx, session, models.StatusInitiated, err)
		return nil, err
	}

	if err := uc.sessionRepo.SetProviderRef(ctx, session.ReferenceID, initiation.ProviderRef); err != nil {
		uc.logger.Warn("Failed to store provider reference",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(err))
	}
	session.ProviderRef = initiation.ProviderRef

	ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusInitiated, models.StatusAwaitingConsent, nil)
	if terr != nil {
		return nil, fmt.Errorf("failed to mark session awaiting consent: %w", terr)
	}
	if !ok {
		return nil, models.NewVerificationError(models.ErrKindExpired, "session superseded before consent could start", nil)
	}
	session.Status = models.StatusAwaitingConsent

	uc.logger.Info("Consent session created",
		logger.String("reference_id", session.ReferenceID),
		logger.String("subject_type", string(subjectType)),
		logger.String("identifier", utils.MaskIdentifier(normalized)))

	return &models.ConsentCreateResponse{
		ReferenceID: session.ReferenceID,
		ConsentURL:  initiation.ConsentURL,
		ExpiresAt:   session.ExpiresAt.Unix(),
	}, nil
}

// callbackWithState appends the signed state token to the caller's redirect
// target.
func callbackWithState(redirectURL, state string) string {
	if redirectURL == "" {
		return ""
	}
	u, err := url.Parse(redirectURL)
	if err != nil {
		return redirectURL
	}
	q := u.Query()
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String()
}

// pollConsentStatus refreshes a live consent session from the provider.
// Poll failures return the stored view unchanged; a webhook can still settle
// the session later.
func (uc *VerificationUC) pollConsentStatus(ctx context.Context, session *models.VerificationSession) (*models.VerificationSession, error) {
	status, err := uc.providerGW.GetConsentStatus(ctx, session.ProviderRef)
	if err != nil {
		uc.logger.Warn("Consent status poll failed",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(err))
		return session, nil
	}

	switch status {
	case models.ConsentPending:
		return session, nil

	case models.ConsentAuthenticated, models.ConsentSuccess:
		if session.Status == models.StatusAwaitingConsent {
			ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusAwaitingConsent, models.StatusAuthenticated, nil)
			if terr != nil {
				return nil, terr
			}
			if ok {
				session.Status = models.StatusAuthenticated
			}
		}
		return uc.attemptDocumentFetch(ctx, session), nil

	case models.ConsentExpired:
		uc.expireSession(ctx, session)
		return session, nil

	case models.ConsentDenied:
		ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, session.Status, models.StatusConsentDenied, nil)
		if terr != nil {
			return nil, terr
		}
		if ok {
			session.Status = models.StatusConsentDenied
			uc.publishCompletion(ctx, session)
		}
		return session, nil
	}

	return session, nil
}

// attemptDocumentFetch pulls the approved document for an AUTHENTICATED
// session and completes it. Fetch failure leaves the session AUTHENTICATED
// with the error recorded, so the next poll or webhook retries. The
// AUTHENTICATED→DOCUMENT_FETCHED conditional transition makes concurrent
// fetchers (poll racing a webhook) collapse into one winner.
func (uc *VerificationUC) attemptDocumentFetch(ctx context.Context, session *models.VerificationSession) *models.VerificationSession {
	if session.Status != models.StatusAuthenticated {
		return session
	}

	result, err := uc.providerGW.FetchConsentDocument(ctx, session.ProviderRef)
	if err != nil {
		msg := err.Error()
		if rerr := uc.sessionRepo.RecordAttempt(ctx, session.ReferenceID, session.AttemptCount+1, msg); rerr != nil {
			uc.logger.Warn("Failed to record document fetch failure",
				logger.String("reference_id", session.ReferenceID),
				logger.Err(rerr))
		}
		session.AttemptCount++
		session.LastError = msg
		return session
	}

	ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusAuthenticated, models.StatusDocumentFetched, nil)
	if terr != nil || !ok {
		if refreshed, gerr := uc.sessionRepo.GetByReferenceID(ctx, session.ReferenceID); gerr == nil {
			return refreshed
		}
		return session
	}

	verifiedAt := uc.now()
	ok, terr = uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusDocumentFetched, models.StatusVerified,
		&models.SessionUpdate{ResultPayload: result, VerifiedAt: &verifiedAt})
	if terr != nil {
		uc.logger.Error("Failed to persist consent verification result",
			logger.String("reference_id", session.ReferenceID),
			logger.Err(terr))
		return session
	}
	if !ok {
		if refreshed, gerr := uc.sessionRepo.GetByReferenceID(ctx, session.ReferenceID); gerr == nil {
			return refreshed
		}
		return session
	}

	session.Status = models.StatusVerified
	session.ResultPayload = result
	session.VerifiedAt = &verifiedAt
	uc.publishCompletion(ctx, session)
	return session
}
