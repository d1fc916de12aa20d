package gateway_nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vericore/kyc/internal/pkg/constants"
	"github.com/vericore/kyc/internal/pkg/models"
)

// MockPublisher records published messages for assertions.
type MockPublisher struct {
	publishedMessages map[string][]byte
	publishError      error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		publishedMessages: make(map[string][]byte),
	}
}

func (m *MockPublisher) Publish(subject string, data []byte) error {
	if m.publishError != nil {
		return m.publishError
	}
	m.publishedMessages[subject] = data
	return nil
}

func TestPublishVerificationCompleted(t *testing.T) {
	mock := NewMockPublisher()
	gw := NewNATSGateway(mock)

	now := time.Now().UTC().Truncate(time.Second)
	event := &models.CompletionEvent{
		ReferenceID: "otp_a1b2c3d4e5f6_1700000000000",
		SubjectType: models.SubjectAadhaar,
		Method:      models.MethodOTP,
		Status:      models.StatusVerified,
		Result: &models.VerificationResult{
			Name:   "RAVI KUMAR",
			Gender: "M",
		},
		VerifiedAt:  &now,
		CompletedAt: now,
	}

	err := gw.PublishVerificationCompleted(context.Background(), event)
	require.NoError(t, err)

	data, exists := mock.publishedMessages[constants.SubjectVerificationCompleted]
	require.True(t, exists)

	var published models.CompletionEvent
	require.NoError(t, json.Unmarshal(data, &published))
	assert.Equal(t, event.ReferenceID, published.ReferenceID)
	assert.Equal(t, models.StatusVerified, published.Status)
	assert.Equal(t, "RAVI KUMAR", published.Result.Name)
}

func TestPublishVerificationCompleted_PublishError(t *testing.T) {
	mock := NewMockPublisher()
	mock.publishError = errors.New("nats: connection closed")
	gw := NewNATSGateway(mock)

	err := gw.PublishVerificationCompleted(context.Background(), &models.CompletionEvent{
		ReferenceID: "consent_0f0f0f0f0f0f_1700000000000",
		Status:      models.StatusConsentDenied,
		CompletedAt: time.Now(),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish completion event")
}
