package usecase

import (
	"context"

	"github.com/vericore/kyc/internal/pkg/models"
)

// GetStatus returns the current view of a session. Expiry is applied lazily
// at read; live consent sessions are refreshed from the provider so polling
// clients see progress even when webhooks are delayed.
func (uc *VerificationUC) GetStatus(ctx context.Context, referenceID string) (*models.VerificationSession, error) {
	session, err := uc.sessionRepo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	if session.Status.IsTerminal() {
		return session, nil
	}

	if session.EffectiveStatus(uc.now()) == models.StatusExpired {
		uc.expireSession(ctx, session)
		return session, nil
	}

	if session.Method == models.MethodConsent &&
		(session.Status == models.StatusAwaitingConsent || session.Status == models.StatusAuthenticated) {
		return uc.pollConsentStatus(ctx, session)
	}

	return session, nil
}
