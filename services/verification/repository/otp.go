package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/vericore/kyc/internal/pkg/constants"
	"github.com/vericore/kyc/internal/pkg/models"
)

// StoreCode saves an OTP code keyed by reference id with the challenge TTL.
// Storing again for the same reference overwrites the prior code.
func (r *VerificationRepo) StoreCode(ctx context.Context, referenceID, code string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyOTPCode, referenceID)
	if err := r.redisClient.Set(ctx, key, code, ttl); err != nil {
		return fmt.Errorf("failed to store OTP code: %w", err)
	}
	return nil
}

// GetCode retrieves the stored OTP code for a reference id. A missing key
// means the TTL elapsed (or the code was consumed) and maps to Expired.
func (r *VerificationRepo) GetCode(ctx context.Context, referenceID string) (string, error) {
	key := fmt.Sprintf(constants.KeyOTPCode, referenceID)
	code, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", models.NewVerificationError(models.ErrKindExpired, "OTP code expired or not found", nil)
		}
		return "", fmt.Errorf("failed to get OTP code: %w", err)
	}
	return code, nil
}

// DeleteCode removes a consumed OTP code.
func (r *VerificationRepo) DeleteCode(ctx context.Context, referenceID string) error {
	key := fmt.Sprintf(constants.KeyOTPCode, referenceID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP code: %w", err)
	}
	return nil
}

// IncrementAttempts bumps the submission counter for a challenge. The TTL is
// set on first increment so the counter dies with the code.
func (r *VerificationRepo) IncrementAttempts(ctx context.Context, referenceID string, ttl time.Duration) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPAttempts, referenceID)
	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP attempts: %w", err)
	}
	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, ttl); err != nil {
			return count, fmt.Errorf("failed to set OTP attempts TTL: %w", err)
		}
	}
	return count, nil
}
