package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vericore/kyc/internal/pkg/constants"
	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
)

// Publisher is the subset of the NATS client the gateway needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSGateway implements the event publishing operations for the
// verification service.
type NATSGateway struct {
	client Publisher
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client Publisher) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishVerificationCompleted announces a session reaching a terminal state.
// Downstream consumers key on reference_id for idempotent handling.
func (g *NATSGateway) PublishVerificationCompleted(ctx context.Context, event *models.CompletionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal completion event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectVerificationCompleted, data); err != nil {
		logger.Error("Failed to publish verification completed event",
			logger.String("reference_id", event.ReferenceID),
			logger.Err(err))
		return fmt.Errorf("failed to publish completion event: %w", err)
	}

	logger.Info("Published verification completed event",
		logger.String("reference_id", event.ReferenceID),
		logger.String("status", string(event.Status)))

	return nil
}
