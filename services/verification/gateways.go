package verification

import (
	"context"

	"github.com/vericore/kyc/internal/pkg/fallback"
	"github.com/vericore/kyc/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/vericore/kyc/services/verification ProviderGW,EventsGW

// ProviderGW is the canonical contract over the external verification
// provider. Adapters map provider response shapes into models types; no
// provider field name crosses this boundary.
type ProviderGW interface {
	// Name identifies the provider on sessions it handled.
	Name() string

	// DirectCandidates returns the ordered endpoint/body variants for a
	// synchronous document check. On success the candidate writes the
	// normalized result into out.
	DirectCandidates(req *models.VerificationRequest, out *models.VerificationResult) []fallback.Candidate

	// OTPDispatchCandidates returns the variants for delivering an OTP code
	// to the Aadhaar-linked mobile. On success the candidate writes the
	// provider-issued id into providerRef.
	OTPDispatchCandidates(aadhaarNumber, referenceID, code string, providerRef *string) []fallback.Candidate

	// VerifyOTP submits a code for a previously dispatched challenge.
	VerifyOTP(ctx context.Context, providerRef, code string) (*models.VerificationResult, error)

	// CreateConsentRequest registers a consent-flow verification and returns
	// the provider reference plus the URL the subject completes out-of-band.
	CreateConsentRequest(ctx context.Context, referenceID, redirectURL string) (*models.ConsentInitiation, error)

	// GetConsentStatus polls the provider's view of a consent request.
	GetConsentStatus(ctx context.Context, providerRef string) (models.ConsentStatus, error)

	// FetchConsentDocument retrieves the verified document fields once the
	// subject has authenticated.
	FetchConsentDocument(ctx context.Context, providerRef string) (*models.VerificationResult, error)
}

// EventsGW notifies the surrounding application of terminal outcomes; the
// account-approval subsystem consumes these, this core never flips approval
// flags itself.
type EventsGW interface {
	PublishVerificationCompleted(ctx context.Context, event *models.CompletionEvent) error
}
