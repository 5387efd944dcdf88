// Package gateway holds the reward issuance gateways.
package gateway

import (
	"context"
	"errors"
	"time"

	"cashback-rewards/internal/core/domain"
	"cashback-rewards/internal/core/ports"

	"github.com/rs/zerolog"
)

// ErrProcessorUnavailable is the transient failure reported by the simulated processor.
var ErrProcessorUnavailable = errors.New("payment processor unavailable")

// SimulatedGateway stands in for a payment processor: every payout takes a
// fixed latency and fails with a fixed probability.
type SimulatedGateway struct {
	latency     time.Duration
	failureRate float64
	random      ports.RandomSource
	log         zerolog.Logger
}

// NewSimulatedGateway creates a simulated gateway. failureRate is clamped to [0,1].
func NewSimulatedGateway(latency time.Duration, failureRate float64, random ports.RandomSource, log zerolog.Logger) *SimulatedGateway {
	switch {
	case failureRate < 0:
		failureRate = 0
	case failureRate > 1:
		failureRate = 1
	}
	return &SimulatedGateway{
		latency:     latency,
		failureRate: failureRate,
		random:      random,
		log:         log,
	}
}

// Issue waits the configured latency, then succeeds or fails at random.
func (g *SimulatedGateway) Issue(ctx context.Context, reward *domain.Reward) error {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if g.random.Float64() < g.failureRate {
		return ErrProcessorUnavailable
	}

	g.log.Debug().
		Str("reward_id", reward.ID).
		Str("user_id", reward.UserID).
		Str("amount", reward.Amount.StringFixed(2)).
		Msg("simulated payout accepted")
	return nil
}
