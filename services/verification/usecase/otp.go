package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
	"github.com/vericore/kyc/internal/utils"
)

var otpCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateOTP starts the Aadhaar OTP flow: a fresh session supersedes any
// live one, a code is stored with the challenge TTL and delivered to the
// Aadhaar-linked mobile through the provider.
func (uc *VerificationUC) GenerateOTP(ctx context.Context, aadhaarNumber string) (*models.VerificationSession, error) {
	normalized, err := utils.NormalizeIdentifier(models.SubjectAadhaar, aadhaarNumber)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.cfg.OTP.TTLMinutes) * time.Minute
	session := uc.newSession(models.MethodOTP, models.SubjectAadhaar, normalized, ttl)
	if err := uc.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create verification session: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return nil, err
	}
	if err := uc.otpRepo.StoreCode(ctx, session.ReferenceID, code, ttl); err != nil {
		return nil, err
	}

	var providerRef string
	candidates := uc.providerGW.OTPDispatchCandidates(normalized, session.ReferenceID, code, &providerRef)
	attempts, err := uc.executor.Execute(ctx, candidates, uc.attemptRecorder(session.ReferenceID))
	session.AttemptCount = attempts
	if err != nil {
		uc.failSession(ctx, session, models.StatusInitiated, err)
		return nil, err
	}

	if providerRef != "" {
		if err := uc.sessionRepo.SetProviderRef(ctx, session.ReferenceID, providerRef); err != nil {
			uc.logger.Warn("Failed to store provider reference",
				logger.String("reference_id", session.ReferenceID),
				logger.Err(err))
		}
		session.ProviderRef = providerRef
	}

	ok, terr := uc.sessionRepo.TransitionStatus(ctx, session.ReferenceID, models.StatusInitiated, models.StatusOTPSent, nil)
	if terr != nil {
		return nil, fmt.Errorf("failed to mark OTP sent: %w", terr)
	}
	if !ok {
		return uc.sessionRepo.GetByReferenceID(ctx, session.ReferenceID)
	}
	session.Status = models.StatusOTPSent

	uc.logger.Info("OTP dispatched",
		logger.String("reference_id", session.ReferenceID),
		logger.String("identifier", utils.MaskIdentifier(normalized)),
		logger.Int("attempts", attempts))
	return session, nil
}

// VerifyOTP checks a submitted code against the stored challenge, then
// completes the session with the provider's demographic payload. Submitting
// against an already VERIFIED session returns the cached result without a
// provider call.
func (uc *VerificationUC) VerifyOTP(ctx context.Context, referenceID, code string) (*models.VerificationSession, error) {
	if !otpCodePattern.MatchString(code) {
		return nil, models.ValidationError("OTP code must be exactly 6 digits")
	}

	session, err := uc.sessionRepo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	if session.Method != models.MethodOTP {
		return nil, models.ValidationError("session is not an OTP verification")
	}
	if session.Status == models.StatusVerified {
		return session, nil
	}
	if session.EffectiveStatus(uc.now()) == models.StatusExpired {
		uc.expireSession(ctx, session)
		return nil, models.NewVerificationError(models.ErrKindExpired, "verification session expired", nil)
	}
	if session.Status != models.StatusOTPSent {
		return nil, models.ValidationError("session is not awaiting an OTP code")
	}

	ttl := time.Duration(uc.cfg.OTP.TTLMinutes) * time.Minute
	count, err := uc.otpRepo.IncrementAttempts(ctx, referenceID, ttl)
	if err != nil {
		return nil, err
	}
	if count > int64(uc.cfg.OTP.MaxAttempts) {
		exhausted := models.NewVerificationError(models.ErrKindRejected, "maximum OTP attempts exceeded", nil)
		uc.failSession(ctx, session, models.StatusOTPSent, exhausted)
		return nil, exhausted
	}

	stored, err := uc.otpRepo.GetCode(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return nil, models.NewVerificationError(models.ErrKindMismatch, "OTP code does not match", nil)
	}

	result, err := uc.providerGW.VerifyOTP(ctx, session.ProviderRef, code)
	if err != nil {
		if models.IsKind(err, models.ErrKindRejected) {
			uc.failSession(ctx, session, models.StatusOTPSent, err)
		}
		return nil, err
	}

	verifiedAt := uc.now()
	ok, terr := uc.sessionRepo.TransitionStatus(ctx, referenceID, models.StatusOTPSent, models.StatusVerified,
		&models.SessionUpdate{ResultPayload: result, VerifiedAt: &verifiedAt})
	if terr != nil {
		return nil, fmt.Errorf("failed to persist verification result: %w", terr)
	}
	if !ok {
		return uc.sessionRepo.GetByReferenceID(ctx, referenceID)
	}

	if err := uc.otpRepo.DeleteCode(ctx, referenceID); err != nil {
		uc.logger.Warn("Failed to delete consumed OTP code",
			logger.String("reference_id", referenceID),
			logger.Err(err))
	}

	session.Status = models.StatusVerified
	session.ResultPayload = result
	session.VerifiedAt = &verifiedAt
	uc.publishCompletion(ctx, session)
	return session, nil
}
