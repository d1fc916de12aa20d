package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vericore/kyc/internal/pkg/models"
)

const sessionColumns = `
	id, reference_id, method, subject_type, identifier, identifier_hash,
	status, provider, provider_ref, attempt_count, last_error,
	result_payload, verified_at, created_at, updated_at, expires_at
`

// CreateSession stores a new session. Any live (non-terminal) session for
// the same subject pair is expired in the same transaction, so at most one
// challenge is outstanding per (subjectType, identifierHash).
func (r *VerificationRepo) CreateSession(ctx context.Context, session *models.VerificationSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Supersede any live challenge for the same subject.
	supersede := `
		UPDATE verification_sessions
		SET status = $1, updated_at = $2
		WHERE subject_type = $3
		  AND identifier_hash = $4
		  AND status IN ($5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, supersede,
		models.StatusExpired,
		now,
		session.SubjectType,
		session.IdentifierHash,
		models.StatusInitiated,
		models.StatusOTPSent,
		models.StatusAwaitingConsent,
		models.StatusAuthenticated,
	)
	if err != nil {
		return fmt.Errorf("failed to supersede prior sessions: %w", err)
	}

	insert := `
		INSERT INTO verification_sessions (
			id, reference_id, method, subject_type, identifier, identifier_hash,
			status, provider, provider_ref, attempt_count, last_error,
			result_payload, verified_at, created_at, updated_at, expires_at
		) VALUES (
			:id, :reference_id, :method, :subject_type, :identifier, :identifier_hash,
			:status, :provider, NULLIF(:provider_ref, ''), :attempt_count, NULLIF(:last_error, ''),
			:result_payload, :verified_at, :created_at, :updated_at, :expires_at
		)
	`
	_, err = tx.NamedExecContext(ctx, insert, session)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByReferenceID retrieves a session by its canonical reference id.
func (r *VerificationRepo) GetByReferenceID(ctx context.Context, referenceID string) (*models.VerificationSession, error) {
	return r.getByField(ctx, "reference_id", referenceID)
}

// GetByProviderRef retrieves a session by the provider-issued id.
func (r *VerificationRepo) GetByProviderRef(ctx context.Context, providerRef string) (*models.VerificationSession, error) {
	return r.getByField(ctx, "provider_ref", providerRef)
}

func (r *VerificationRepo) getByField(ctx context.Context, field, value string) (*models.VerificationSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM verification_sessions WHERE %s = $1`, sessionColumns, field)

	var (
		session     models.VerificationSession
		providerRef sql.NullString
		lastError   sql.NullString
		payload     []byte
		verifiedAt  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&session.ID,
		&session.ReferenceID,
		&session.Method,
		&session.SubjectType,
		&session.Identifier,
		&session.IdentifierHash,
		&session.Status,
		&session.Provider,
		&providerRef,
		&session.AttemptCount,
		&lastError,
		&payload,
		&verifiedAt,
		&session.CreatedAt,
		&session.UpdatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewVerificationError(models.ErrKindNotFound, "verification session not found", nil)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.ProviderRef = providerRef.String
	session.LastError = lastError.String
	if verifiedAt.Valid {
		session.VerifiedAt = &verifiedAt.Time
	}
	if len(payload) > 0 {
		var result models.VerificationResult
		if err := result.Scan(payload); err != nil {
			return nil, fmt.Errorf("failed to decode result payload: %w", err)
		}
		session.ResultPayload = &result
	}
	return &session, nil
}

// TransitionStatus applies the single-writer-per-transition discipline: the
// update lands only if the stored status still matches the expected
// pre-state, so a webhook and a concurrent poll cannot both win.
func (r *VerificationRepo) TransitionStatus(ctx context.Context, referenceID string, from, to models.VerificationStatus, update *models.SessionUpdate) (bool, error) {
	if update == nil {
		update = &models.SessionUpdate{}
	}

	query := `
		UPDATE verification_sessions
		SET status = $1,
		    updated_at = $2,
		    result_payload = COALESCE($3, result_payload),
		    provider_ref = COALESCE($4, provider_ref),
		    last_error = COALESCE($5, last_error),
		    verified_at = COALESCE($6, verified_at)
		WHERE reference_id = $7 AND status = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		to,
		time.Now(),
		update.ResultPayload,
		update.ProviderRef,
		update.LastError,
		update.VerifiedAt,
		referenceID,
		from,
	)
	if err != nil {
		return false, fmt.Errorf("failed to transition session status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

// RecordAttempt overwrites the diagnostic trail of the fallback chain.
func (r *VerificationRepo) RecordAttempt(ctx context.Context, referenceID string, attemptCount int, lastError string) error {
	query := `
		UPDATE verification_sessions
		SET attempt_count = $1, last_error = NULLIF($2, ''), updated_at = $3
		WHERE reference_id = $4
	`
	_, err := r.db.ExecContext(ctx, query, attemptCount, lastError, time.Now(), referenceID)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}

// SetProviderRef stores the provider-issued id for webhook correlation.
func (r *VerificationRepo) SetProviderRef(ctx context.Context, referenceID, providerRef string) error {
	query := `
		UPDATE verification_sessions
		SET provider_ref = $1, updated_at = $2
		WHERE reference_id = $3
	`
	_, err := r.db.ExecContext(ctx, query, providerRef, time.Now(), referenceID)
	if err != nil {
		return fmt.Errorf("failed to set provider ref: %w", err)
	}
	return nil
}
