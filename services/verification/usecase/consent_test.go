package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/vericore/kyc/internal/pkg/jwt"
	"github.com/vericore/kyc/internal/pkg/models"
)

func TestCreateConsentSession_Success(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	var capturedRedirect string
	m.sessionRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, session *models.VerificationSession) error {
			assert.Equal(t, models.MethodConsent, session.Method)
			assert.Equal(t, models.SubjectAadhaar, session.SubjectType)
			return nil
		})
	m.providerGW.EXPECT().CreateConsentRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, referenceID, redirectURL string) (*models.ConsentInitiation, error) {
			capturedRedirect = redirectURL
			return &models.ConsentInitiation{
				ProviderRef: "consent-555",
				ConsentURL:  "https://provider.example.com/consent/consent-555",
			}, nil
		})
	m.sessionRepo.EXPECT().SetProviderRef(gomock.Any(), gomock.Any(), "consent-555").Return(nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.StatusInitiated, models.StatusAwaitingConsent, nil).Return(true, nil)

	resp, err := uc.CreateConsentSession(context.Background(), models.SubjectAadhaar, "234567890123", "https://app.example.com/callback")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ReferenceID)
	assert.Equal(t, "https://provider.example.com/consent/consent-555", resp.ConsentURL)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	// The redirect handed to the provider carries a state token signed for
	// this session.
	parsed, err := url.Parse(capturedRedirect)
	require.NoError(t, err)
	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)
	refFromState, err := jwtpkg.ValidateStateToken(state, "test-state-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.ReferenceID, refFromState)
}

func TestCreateConsentSession_ProviderFailureFailsSession(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.sessionRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
	m.providerGW.EXPECT().CreateConsentRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.NewVerificationError(models.ErrKindUnavailable, "provider request failed", nil))
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.StatusInitiated, models.StatusFailed, gomock.Any()).Return(true, nil)
	m.eventsGW.EXPECT().PublishVerificationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.CreateConsentSession(context.Background(), models.SubjectAadhaar, "234567890123", "")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, models.ErrKindUnavailable, models.KindOf(err))
}

func TestGetStatus_ConsentPollAuthenticatedThenFetch(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	stored := sessionFixture(models.MethodConsent, models.StatusAwaitingConsent)
	stored.ProviderRef = "consent-555"

	m.sessionRepo.EXPECT().GetByReferenceID(gomock.Any(), stored.ReferenceID).Return(stored, nil)
	m.providerGW.EXPECT().GetConsentStatus(gomock.Any(), "consent-555").Return(models.ConsentAuthenticated, nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), stored.ReferenceID, models.StatusAwaitingConsent, models.StatusAuthenticated, nil).Return(true, nil)
	m.providerGW.EXPECT().FetchConsentDocument(gomock.Any(), "consent-555").
		Return(&models.VerificationResult{Name: "RAVI KUMAR", ShareCode: "XX34"}, nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), stored.ReferenceID, models.StatusAuthenticated, models.StatusDocumentFetched, nil).Return(true, nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), stored.ReferenceID, models.StatusDocumentFetched, models.StatusVerified, gomock.Any()).Return(true, nil)
	m.eventsGW.EXPECT().PublishVerificationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	session, err := uc.GetStatus(context.Background(), stored.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, session.Status)
	assert.Equal(t, "RAVI KUMAR", session.ResultPayload.Name)
}

func TestGetStatus_ConsentFetchFailureStaysAuthenticated(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	stored := sessionFixture(models.MethodConsent, models.StatusAwaitingConsent)
	stored.ProviderRef = "consent-555"

	m.sessionRepo.EXPECT().GetByReferenceID(gomock.Any(), stored.ReferenceID).Return(stored, nil)
	m.providerGW.EXPECT().GetConsentStatus(gomock.Any(), "consent-555").Return(models.ConsentAuthenticated, nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), stored.ReferenceID, models.StatusAwaitingConsent, models.StatusAuthenticated, nil).Return(true, nil)
	m.providerGW.EXPECT().FetchConsentDocument(gomock.Any(), "consent-555").
		Return(nil, models.NewVerificationError(models.ErrKindUnavailable, "document endpoint down", nil))
	m.sessionRepo.EXPECT().RecordAttempt(gomock.Any(), stored.ReferenceID, gomock.Any(), gomock.Any()).Return(nil)

	session, err := uc.GetStatus(context.Background(), stored.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusAuthenticated, session.Status)
	assert.NotEmpty(t, session.LastError)
}

func TestGetStatus_ConsentDenied(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	stored := sessionFixture(models.MethodConsent, models.StatusAwaitingConsent)
	stored.ProviderRef = "consent-555"

	m.sessionRepo.EXPECT().GetByReferenceID(gomock.Any(), stored.ReferenceID).Return(stored, nil)
	m.providerGW.EXPECT().GetConsentStatus(gomock.Any(), "consent-555").Return(models.ConsentDenied, nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), stored.ReferenceID, models.StatusAwaitingConsent, models.StatusConsentDenied, nil).Return(true, nil)
	m.eventsGW.EXPECT().PublishVerificationCompleted(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *models.CompletionEvent) error {
			assert.Equal(t, models.StatusConsentDenied, event.Status)
			return nil
		})

	session, err := uc.GetStatus(context.Background(), stored.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusConsentDenied, session.Status)
}

func TestGetStatus_PollFailureReturnsStoredView(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	stored := sessionFixture(models.MethodConsent, models.StatusAwaitingConsent)
	stored.ProviderRef = "consent-555"

	m.sessionRepo.EXPECT().GetByReferenceID(gomock.Any(), stored.ReferenceID).Return(stored, nil)
	m.providerGW.EXPECT().GetConsentStatus(gomock.Any(), "consent-555").
		Return(models.ConsentStatus(""), models.NewVerificationError(models.ErrKindUnavailable, "poll failed", nil))

	session, err := uc.GetStatus(context.Background(), stored.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusAwaitingConsent, session.Status)
}

func TestGetStatus_TerminalSessionNeverPolls(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	stored := sessionFixture(models.MethodConsent, models.StatusVerified)

	m.sessionRepo.EXPECT().GetByReferenceID(gomock.Any(), stored.ReferenceID).Return(stored, nil)

	session, err := uc.GetStatus(context.Background(), stored.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, session.Status)
}

func TestGetStatus_LazyExpiry(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	stored := sessionFixture(models.MethodConsent, models.StatusAwaitingConsent)
	stored.ExpiresAt = stored.CreatedAt.Add(-time.Minute)

	m.sessionRepo.EXPECT().GetByReferenceID(gomock.Any(), stored.ReferenceID).Return(stored, nil)
	m.sessionRepo.EXPECT().TransitionStatus(gomock.Any(), stored.ReferenceID, models.StatusAwaitingConsent, models.StatusExpired, nil).Return(true, nil)

	session, err := uc.GetStatus(context.Background(), stored.ReferenceID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, session.Status)
}
