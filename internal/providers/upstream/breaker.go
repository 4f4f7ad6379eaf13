// Package upstream holds the plumbing shared by the provider clients.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"weatherwise/internal/config"
)

// ErrCircuitOpen is returned without calling the provider while the breaker is open
var ErrCircuitOpen = errors.New("circuit breaker open")

// StatusError is returned when a provider answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

// Breaker guards calls to one provider. A nil or disabled Breaker runs calls directly.
// It never retries.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a breaker for the named provider. It returns a pass-through
// breaker when cfg.Enabled is false.
func NewBreaker(name string, cfg config.BreakerConfig, logger *slog.Logger) *Breaker {
	if !cfg.Enabled {
		return &Breaker{}
	}

	logger = logger.With("component", "circuit-breaker", "provider", name)
	threshold := cfg.ConsecutiveFailures

	return &Breaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
			},
			IsSuccessful: isSuccessful,
		}),
	}
}

// Execute runs fn through the breaker
func (b *Breaker) Execute(fn func() error) error {
	if b == nil || b.cb == nil {
		return fn()
	}

	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return err
}

// isSuccessful keeps caller-side failures from tripping the breaker:
// 4xx answers and cancelled requests say nothing about provider health.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusBadRequest && statusErr.StatusCode < http.StatusInternalServerError
	}
	return false
}
