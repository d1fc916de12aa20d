package verification

import (
	"context"

	"github.com/vericore/kyc/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vericore/kyc/services/verification VerificationUC

// VerificationUC represents the verification usecase interface
type VerificationUC interface {
	// direct method
	VerifyDocument(ctx context.Context, subjectType models.SubjectType, identifier, name string) (*models.VerificationSession, error)

	// OTP method
	GenerateOTP(ctx context.Context, aadhaarNumber string) (*models.VerificationSession, error)
	VerifyOTP(ctx context.Context, referenceID, code string) (*models.VerificationSession, error)

	// consent method
	CreateConsentSession(ctx context.Context, subjectType models.SubjectType, identifier, redirectURL string) (*models.ConsentCreateResponse, error)

	// session status; for live consent sessions this polls the provider
	GetStatus(ctx context.Context, referenceID string) (*models.VerificationSession, error)

	// webhook reconciliation
	ReconcileWebhookEvent(ctx context.Context, event *models.WebhookEvent) error
}
