package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRetrier(maxRetries int, interval time.Duration) *Retrier {
	return &Retrier{
		MaxRetries:      maxRetries,
		InitialInterval: interval,
		Logger:          zap.NewNop(),
	}
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	const interval = 10 * time.Millisecond

	attempts := 0
	call := func(ctx context.Context) (*Completion, error) {
		attempts++
		if attempts <= 2 {
			return nil, fmt.Errorf("transient failure %d", attempts)
		}
		return &Completion{Content: "recovered", Model: "stub"}, nil
	}

	start := time.Now()
	completion, err := newTestRetrier(2, interval).Do(context.Background(), "stub", "stub-model", call)
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Equal(t, "recovered", completion.Content)
	assert.Equal(t, 3, attempts)
	// Two backoff waits: interval + 2*interval.
	assert.GreaterOrEqual(t, elapsed, 3*interval)
}

func TestRetrier_ExhaustsAndReturnsLastFailure(t *testing.T) {
	attempts := 0
	call := func(ctx context.Context) (*Completion, error) {
		attempts++
		return nil, fmt.Errorf("attempt %d failed", attempts)
	}

	completion, err := newTestRetrier(1, time.Millisecond).Do(context.Background(), "stub", "stub-model", call)

	require.Nil(t, completion)
	require.Equal(t, 2, attempts)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "stub", provErr.Provider)
	assert.Equal(t, 2, provErr.Attempts)
	assert.EqualError(t, provErr.Err, "attempt 2 failed")
}

func TestRetrier_ZeroRetriesMeansOneAttempt(t *testing.T) {
	attempts := 0
	call := func(ctx context.Context) (*Completion, error) {
		attempts++
		return nil, errors.New("boom")
	}

	_, err := newTestRetrier(0, time.Millisecond).Do(context.Background(), "stub", "stub-model", call)

	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestRetrier_SuccessShortCircuits(t *testing.T) {
	attempts := 0
	call := func(ctx context.Context) (*Completion, error) {
		attempts++
		return &Completion{Content: "ok", Model: "stub"}, nil
	}

	start := time.Now()
	completion, err := newTestRetrier(5, time.Second).Do(context.Background(), "stub", "stub-model", call)

	require.NoError(t, err)
	require.Equal(t, "ok", completion.Content)
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRetrier_ContextCancelAbortsBackoffWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	call := func(ctx context.Context) (*Completion, error) {
		return nil, errors.New("always failing")
	}

	start := time.Now()
	_, err := newTestRetrier(5, 5*time.Second).Do(ctx, "stub", "stub-model", call)

	require.Error(t, err)
	// The 5s backoff wait must have been abandoned when the context ended.
	assert.Less(t, time.Since(start), time.Second)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.EqualError(t, provErr.Err, "always failing")
}

func TestRetrier_FlagsTimeoutFailures(t *testing.T) {
	call := func(ctx context.Context) (*Completion, error) {
		return nil, fmt.Errorf("call: %w", context.DeadlineExceeded)
	}

	_, err := newTestRetrier(0, time.Millisecond).Do(context.Background(), "stub", "stub-model", call)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.True(t, provErr.TimedOut)
	assert.Contains(t, provErr.Error(), "timed out")
}
