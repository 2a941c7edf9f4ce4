package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ProviderError is returned once every retry attempt against a provider has
// failed. It wraps the last attempt's failure cause.
type ProviderError struct {
	Provider string
	Model    string
	Attempts int
	TimedOut bool
	Err      error
}

func (e *ProviderError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("%s provider (model %s) timed out after %d attempt(s): %v", e.Provider, e.Model, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s provider (model %s) failed after %d attempt(s): %v", e.Provider, e.Model, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// MalformedResponseError means the provider answered successfully but the
// payload carried no usable completion content. It feeds the retrier like
// any other failure cause.
type MalformedResponseError struct {
	Provider string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Provider, e.Reason)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
