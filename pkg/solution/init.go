package solution

import (
	"context"

	"github.com/Rashidqf/ai-error-solution/pkg/config"
	"github.com/Rashidqf/ai-error-solution/pkg/formatter"
	"github.com/Rashidqf/ai-error-solution/pkg/model"
)

// defaultClient backs the package-level Init/FixError surface. It is meant
// to be written exactly once at startup, before any concurrent analysis;
// concurrent Init calls are last-write-wins.
var defaultClient *Client

// Init configures the package-level client. Call it once at startup.
func Init(cfg *config.Config, opts ...Option) error {
	client, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	defaultClient = client
	return nil
}

// Reset drops the package-level client. Mainly useful in tests.
func Reset() {
	defaultClient = nil
}

// FixError runs an analysis on the package-level client. Before Init it
// still never fails: the result carries the not-initialized message, and in
// non-silent mode the failure is reported to the console.
func FixError(ctx context.Context, input interface{}, opts Options) *model.Result {
	c := defaultClient
	if c == nil {
		rec := model.Normalize(input)
		result := failure(rec, config.ErrNotInitialized.Error())
		if !opts.Silent {
			formatter.ConsoleReporter{}.ReportFailure(rec, result.AnalysisError)
		}
		return result
	}
	return c.FixError(ctx, input, opts)
}
