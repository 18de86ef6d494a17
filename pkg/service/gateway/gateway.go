package gateway

import (
	"context"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Gateway routes generation requests across model tiers. The fast tier
// is retried on transient quota failures; any other failure, or
// exhausting the retry budget, escalates to the capable tier exactly
// once.
type Gateway struct {
	fast        interfaces.ModelClient
	capable     interfaces.ModelClient
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

type state int

const (
	stateAttempting state = iota
	stateBackoff
	stateEscalated
	stateSucceeded
	stateExhausted
)

type Option func(*Gateway)

func WithMaxAttempts(n int) Option {
	return func(g *Gateway) {
		g.maxAttempts = n
	}
}

func WithBackoff(d time.Duration) Option {
	return func(g *Gateway) {
		g.backoff = d
	}
}

func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(g *Gateway) {
		g.sleep = sleep
	}
}

func New(fast, capable interfaces.ModelClient, opts ...Option) *Gateway {
	g := &Gateway{
		fast:        fast,
		capable:     capable,
		maxAttempts: 3,
		backoff:     5 * time.Second,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Generate runs the tiered retry loop. The returned string is the raw
// model output; normalization happens in the caller.
func (g *Gateway) Generate(ctx context.Context, req *model.GenerateRequest) (string, error) {
	logger := logging.From(ctx)

	backoff := g.backoff
	if req.Backoff > 0 {
		backoff = req.Backoff
	}

	var (
		fastErr      error
		capableErr   error
		fastAttempts int
		output       string
	)

	st := stateAttempting
	for st != stateSucceeded && st != stateExhausted {
		switch st {
		case stateAttempting:
			fastAttempts++
			text, err := g.fast.GenerateContent(ctx, req)
			if err == nil {
				output = text
				st = stateSucceeded
				break
			}
			fastErr = err
			logger.Warn("fast tier attempt failed",
				"tier", types.TierFast,
				"attempt", fastAttempts,
				"error", err)
			if !isTransient(err) {
				st = stateEscalated
				break
			}
			if fastAttempts >= g.maxAttempts {
				st = stateEscalated
				break
			}
			st = stateBackoff

		case stateBackoff:
			if err := g.sleep(ctx, backoff); err != nil {
				return "", goerr.Wrap(err, "generation canceled during backoff")
			}
			st = stateAttempting

		case stateEscalated:
			text, err := g.capable.GenerateContent(ctx, req)
			if err == nil {
				output = text
				st = stateSucceeded
				break
			}
			logger.Warn("capable tier attempt failed",
				"tier", types.TierCapable,
				"error", err)
			capableErr = err
			st = stateExhausted
		}
	}

	if st == stateExhausted {
		return "", goerr.Wrap(types.ErrModelUnavailable, "all tiers failed",
			goerr.V("fast_error", fastErr.Error()),
			goerr.V("capable_error", capableErr.Error()),
			goerr.V("fast_attempts", fastAttempts))
	}

	return output, nil
}

// GenerateDirect is a single fast-tier call with no retry or
// escalation, used where latency matters more than resilience.
func (g *Gateway) GenerateDirect(ctx context.Context, req *model.GenerateRequest) (string, error) {
	text, err := g.fast.GenerateContent(ctx, req)
	if err != nil {
		return "", goerr.Wrap(types.ErrModelUnavailable, "fast tier failed",
			goerr.V("fast_error", err.Error()))
	}
	return text, nil
}
