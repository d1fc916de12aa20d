package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

// directSessionTTL bounds how long a direct session can linger non-terminal
// if the process dies mid-call.
const directSessionTTL = 10 * time.Minute

// VerifyDocument runs a synchronous document check through the fallback
// chain and settles the session in the same call.
func (uc *VerificationUC) VerifyDocument(ctx context.Context, subjectType models.SubjectType, identifier, name string) (*models.VerificationSession, error) {
	normalized, err := utils.NormalizeIdentifier(subjectType, identifier)
	if err != nil {
		return nil, err
	}

	session := uc.newSession(models.MethodDirect, subjectType, normalized, directSessionTTL)
	if err := uc.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create verification session: %w", err)
	}

	uc.logger.Info("Starting direct verification",
		logger.String("reference_id", session.ReferenceID),
		logger.String("subject_type", string(subjectType)),
		logger.String("identifier", utils.MaskIdentifier(normalized)))

	req := &models.VerificationRequest{
		SubjectType: subjectType,
		Identifier:  normalized,
		Name:        name,
	}
	var result models.VerificationResult
	attempts, err := uc.executor.Execute(ctx, uc.providerGW.DirectCandidates(req, &result), uc.attemptRecorder(session.ReferenceID))
	session.AttemptCount = attempts
	if err != nil {
		uc.failSession(ctx, session, models.StatusInitiated, err)
		return nil, err
	}

	verifiedAt := uc.now()
	ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusInitiated, models.StatusVerified,
		&models.SessionUpdate{ResultPayload: &result, VerifiedAt: &verifiedAt})
	if terr != nil {
		return nil, fmt.Errorf("failed to persist verification result: %w", terr)
	}
	if !ok {
		// Superseded or expired while the provider call was in flight;
		// return the stored view.
		return uc.sessionRepo.GetByReferenceID(ctx, session.ReferenceID)
	}

	session.Status = models.StatusVerified
	session.ResultPayload = &result
	session.VerifiedAt = &verifiedAt
	uc.publishCompletion(ctx, session)
	return session, nil
}
