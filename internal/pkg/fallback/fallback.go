package fallback

import (
	"context"
	"fmt"

	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/models"
)

// Operation is one way of invoking a logical provider call. Implementations
// capture their output through closures; the executor only sees the error.
type Operation func(ctx context.Context) error

// Candidate pairs an operation with a name used in the diagnostic trail.
type Candidate struct {
	Name string
	Call Operation
}

// Config holds fallback chain configuration
type Config struct {
	// MaxAttempts caps the total candidates tried per invocation, bounding
	// worst-case latency.
	MaxAttempts int
}

// DefaultConfig returns a default fallback configuration
func DefaultConfig() Config {
	return Config{MaxAttempts: 3}
}

// Executor walks an ordered list of candidates until one succeeds or an
// unambiguous rejection stops the chain. Only availability failures advance
// to the next candidate; an invalid document stays invalid no matter which
// endpoint variant is asked.
type Executor struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a new executor with the given configuration
func New(config Config, l *logger.ZapLogger) *Executor {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultConfig().MaxAttempts
	}
	return &Executor{config: config, logger: l}
}

// OnAttempt is invoked after every attempt with the running attempt count
// and the attempt's error (nil on success), so callers can persist the
// diagnostic trail as it grows.
type OnAttempt func(attempt int, candidate string, err error)

// Execute runs the chain. It returns the number of attempts made and the
// final error (nil when a candidate succeeded).
func (e *Executor) Execute(ctx context.Context, candidates []Candidate, onAttempt OnAttempt) (int, error) {
	if len(candidates) == 0 {
		return 0, models.NewVerificationError(models.ErrKindUnknown, "no candidates configured", nil)
	}

	var lastErr error
	attempts := 0

	for _, candidate := range candidates {
		if attempts >= e.config.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return attempts, ctx.Err()
		default:
		}

		attempts++
		err := candidate.Call(ctx)
		if onAttempt != nil {
			onAttempt(attempts, candidate.Name, err)
		}

		if err == nil {
			if attempts > 1 {
				e.logger.Info("Candidate succeeded after fallback",
					logger.String("candidate", candidate.Name),
					logger.Int("attempt", attempts))
			}
			return attempts, nil
		}

		lastErr = err

		if !models.Retryable(err) {
			e.logger.Debug("Candidate failed terminally, stopping chain",
				logger.String("candidate", candidate.Name),
				logger.Int("attempt", attempts),
				logger.Err(err))
			return attempts, err
		}

		e.logger.Debug("Candidate unavailable, trying next",
			logger.String("candidate", candidate.Name),
			logger.Int("attempt", attempts),
			logger.Err(err))
	}

	e.logger.Error("All candidates exhausted",
		logger.Int("attempts", attempts),
		logger.Err(lastErr))

	return attempts, fmt.Errorf("fallback chain exhausted after %d attempts: %w", attempts, lastErr)
}
