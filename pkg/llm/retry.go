package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Retrier wraps a provider call with bounded exponential-backoff retries.
// Delays double per attempt starting at InitialInterval (1s, 2s, 4s, ...).
// MaxRetries counts retries, not attempts: MaxRetries of 0 means exactly one
// attempt. Randomization is disabled so the schedule is deterministic.
type Retrier struct {
	MaxRetries      int
	InitialInterval time.Duration
	Logger          *zap.Logger
}

// NewRetrier returns a Retrier with the default 1s initial interval.
func NewRetrier(maxRetries int) *Retrier {
	return &Retrier{
		MaxRetries:      maxRetries,
		InitialInterval: time.Second,
		Logger:          zap.NewNop(),
	}
}

// Do invokes call until it succeeds or the attempt budget is exhausted.
// Success short-circuits remaining attempts. After exhaustion the last
// failure cause is returned wrapped in a ProviderError. The backoff wait is
// timer based and aborts when ctx is done.
func (r *Retrier) Do(ctx context.Context, provider, model string, call func(context.Context) (*Completion, error)) (*Completion, error) {
	interval := r.InitialInterval
	if interval <= 0 {
		interval = time.Second
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxRetries := r.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = time.Hour
	b.MaxElapsedTime = 0 // bounded by attempt count only

	var (
		out      *Completion
		lastErr  error
		attempts int
	)
	op := func() error {
		attempts++
		completion, err := call(ctx)
		if err != nil {
			lastErr = err
			logger.Warn("provider call failed",
				zap.String("provider", provider),
				zap.String("model", model),
				zap.Int("attempt", attempts),
				zap.Error(err))
			return err
		}
		out = completion
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxRetries)), ctx))
	if err != nil {
		if lastErr == nil {
			// Context ended before the first attempt ran.
			lastErr = err
		}
		return nil, &ProviderError{
			Provider: provider,
			Model:    model,
			Attempts: attempts,
			TimedOut: isTimeout(lastErr),
			Err:      lastErr,
		}
	}
	return out, nil
}
