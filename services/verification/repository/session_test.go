package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/kyc/internal/pkg/database"
	"github.com/vericore/kyc/internal/pkg/models"
)

func setupSessionRepoTest(t *testing.T) (*VerificationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &VerificationRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func sessionRows(session *models.VerificationSession) *sqlmock.Rows {
	var providerRef, lastError interface{}
	if session.ProviderRef != "" {
		providerRef = session.ProviderRef
	}
	if session.LastError != "" {
		lastError = session.LastError
	}
	var payload interface{}
	if session.ResultPayload != nil {
		v, _ := session.ResultPayload.Value()
		payload = v
	}
	var verifiedAt interface{}
	if session.VerifiedAt != nil {
		verifiedAt = *session.VerifiedAt
	}

	return sqlmock.NewRows([]string{
		"id", "reference_id", "method", "subject_type", "identifier", "identifier_hash",
		"status", "provider", "provider_ref", "attempt_count", "last_error",
		"result_payload", "verified_at", "created_at", "updated_at", "expires_at",
	}).AddRow(
		session.ID, session.ReferenceID, session.Method, session.SubjectType,
		session.Identifier, session.IdentifierHash, session.Status, session.Provider,
		providerRef, session.AttemptCount, lastError, payload, verifiedAt,
		session.CreatedAt, session.UpdatedAt, session.ExpiresAt,
	)
}

func testSession() *models.VerificationSession {
	now := time.Now()
	return &models.VerificationSession{
		ID:             uuid.New(),
		ReferenceID:    "otp_a1b2c3d4e5f6_1700000000000",
		Method:         models.MethodOTP,
		SubjectType:    models.SubjectAadhaar,
		Identifier:     "234567890123",
		IdentifierHash: "a1b2c3d4e5f6",
		Status:         models.StatusOTPSent,
		Provider:       "sandbox",
		AttemptCount:   1,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(10 * time.Minute),
	}
}

func TestCreateSession_SupersedesPriorLiveSessions(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	session := testSession()
	session.Status = models.StatusInitiated

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE verification_sessions").
		WithArgs(
			models.StatusExpired, sqlmock.AnyArg(),
			session.SubjectType, session.IdentifierHash,
			models.StatusInitiated, models.StatusOTPSent,
			models.StatusAwaitingConsent, models.StatusAuthenticated,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO verification_sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateSession(context.Background(), session)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSession_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	session := testSession()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE verification_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO verification_sessions").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.CreateSession(context.Background(), session)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByReferenceID(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	verifiedAt := time.Now()
	session := testSession()
	session.Status = models.StatusVerified
	session.ProviderRef = "prov-ref-123"
	session.ResultPayload = &models.VerificationResult{Name: "RAVI KUMAR", Gender: "M"}
	session.VerifiedAt = &verifiedAt

	mock.ExpectQuery("SELECT (.+) FROM verification_sessions WHERE reference_id").
		WithArgs(session.ReferenceID).
		WillReturnRows(sessionRows(session))

	got, err := repo.GetByReferenceID(context.Background(), session.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, session.ReferenceID, got.ReferenceID)
	assert.Equal(t, models.StatusVerified, got.Status)
	assert.Equal(t, "prov-ref-123", got.ProviderRef)
	require.NotNil(t, got.ResultPayload)
	assert.Equal(t, "RAVI KUMAR", got.ResultPayload.Name)
	require.NotNil(t, got.VerifiedAt)
}

func TestGetByReferenceID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM verification_sessions WHERE reference_id").
		WithArgs("otp_missing_1").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByReferenceID(context.Background(), "otp_missing_1")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
}

func TestGetByProviderRef(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	session := testSession()
	session.ProviderRef = "prov-ref-123"

	mock.ExpectQuery("SELECT (.+) FROM verification_sessions WHERE provider_ref").
		WithArgs("prov-ref-123").
		WillReturnRows(sessionRows(session))

	got, err := repo.GetByProviderRef(context.Background(), "prov-ref-123")

	require.NoError(t, err)
	assert.Equal(t, session.ReferenceID, got.ReferenceID)
}

func TestTransitionStatus(t *testing.T) {
	testCases := []struct {
		name         string
		rowsAffected int64
		expectOK     bool
	}{
		{"precondition holds", 1, true},
		{"precondition lost", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupSessionRepoTest(t)
			defer cleanup()

			mock.ExpectExec("UPDATE verification_sessions").
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			ok, err := repo.TransitionStatus(context.Background(),
				"otp_a1b2c3d4e5f6_1700000000000", models.StatusOTPSent, models.StatusVerified,
				&models.SessionUpdate{ResultPayload: &models.VerificationResult{Name: "RAVI KUMAR"}})

			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordAttempt(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE verification_sessions").
		WithArgs(2, "pan-verify-v2: PROVIDER_UNAVAILABLE", sqlmock.AnyArg(), "direct_a1b2c3d4e5f6_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordAttempt(context.Background(), "direct_a1b2c3d4e5f6_1", 2, "pan-verify-v2: PROVIDER_UNAVAILABLE")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetProviderRef(t *testing.T) {
	repo, mock, cleanup := setupSessionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE verification_sessions").
		WithArgs("prov-ref-123", sqlmock.AnyArg(), "otp_a1b2c3d4e5f6_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetProviderRef(context.Background(), "otp_a1b2c3d4e5f6_1", "prov-ref-123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
