package solution

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Rashidqf/ai-error-solution/pkg/config"
	"github.com/Rashidqf/ai-error-solution/pkg/formatter"
	"github.com/Rashidqf/ai-error-solution/pkg/llm"
	"github.com/Rashidqf/ai-error-solution/pkg/model"
	"github.com/Rashidqf/ai-error-solution/pkg/parser"
	"github.com/Rashidqf/ai-error-solution/pkg/prompts"
)

// Reporter consumes analysis outcomes in non-silent mode.
type Reporter interface {
	ReportAnalysis(rec model.ErrorRecord, analysis *model.Analysis)
	ReportFailure(rec model.ErrorRecord, message string)
}

// Options controls a single FixError invocation. Silent mode returns the
// result instead of handing it to the Reporter.
type Options struct {
	Silent bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger enables structured logging on the client and its retrier.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithReporter replaces the default console reporter.
func WithReporter(r Reporter) Option {
	return func(c *Client) { c.reporter = r }
}

// WithLLM injects a provider instance directly, bypassing the factory.
func WithLLM(l llm.LLM) Option {
	return func(c *Client) { c.llm = l }
}

// WithRetrier replaces the default retrier.
func WithRetrier(r *llm.Retrier) Option {
	return func(c *Client) { c.retrier = r }
}

// Client orchestrates one analysis flow: normalize the error, call the
// provider with retries, parse the completion.
type Client struct {
	cfg      *config.Config
	llm      llm.LLM
	retrier  *llm.Retrier
	reporter Reporter
	logger   *zap.Logger
}

// New builds a Client from an already-loaded configuration.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, config.ErrNotInitialized
	}

	c := &Client{
		cfg:      cfg,
		reporter: formatter.ConsoleReporter{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.llm == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		name := strings.ToLower(cfg.Provider)
		if name == "" {
			name = config.DefaultProvider
		}
		instance, err := llm.NewFactory().Create(llm.Provider(name), cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		c.llm = instance
	}
	if c.retrier == nil {
		r := llm.NewRetrier(cfg.MaxRetries)
		r.Logger = c.logger
		c.retrier = r
	}
	return c, nil
}

// FixError analyzes any accepted error input (error, string, ErrorRecord)
// and never fails: configuration problems, provider failures and malformed
// responses all surface uniformly as a Result with AnalysisError set. In
// non-silent mode the outcome is also handed to the Reporter.
func (c *Client) FixError(ctx context.Context, input interface{}, opts Options) *model.Result {
	rec := model.Normalize(input)
	result := c.analyze(ctx, rec)

	if !opts.Silent {
		if result.Failed() {
			c.logger.Error("analysis failed",
				zap.String("error", rec.Message),
				zap.String("cause", result.AnalysisError))
			c.reporter.ReportFailure(rec, result.AnalysisError)
		} else {
			c.reporter.ReportAnalysis(rec, result.Analysis)
		}
	}
	return result
}

func (c *Client) analyze(ctx context.Context, rec model.ErrorRecord) (result *model.Result) {
	// Nothing may escape the orchestrator boundary, a provider SDK panic
	// included.
	defer func() {
		if r := recover(); r != nil {
			result = failure(rec, fmt.Sprintf("ai-error-solution: analysis panicked: %v", r))
		}
	}()

	if c == nil || c.cfg == nil || c.llm == nil {
		return failure(rec, config.ErrNotInitialized.Error())
	}
	if err := c.cfg.Validate(); err != nil {
		return failure(rec, err.Error())
	}
	if ctx == nil {
		ctx = context.Background()
	}

	prompt := prompts.BuildErrorPrompt(rec)
	timeout := c.cfg.EffectiveTimeout()
	provider := strings.ToLower(c.cfg.Provider)
	if provider == "" {
		provider = config.DefaultProvider
	}

	completion, err := c.retrier.Do(ctx, provider, c.llm.Model(), func(ctx context.Context) (*llm.Completion, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return c.llm.Complete(callCtx, prompt)
	})
	if err != nil {
		return failure(rec, err.Error())
	}

	analysis := parser.ParseAIResponse(completion.Content)
	c.logger.Debug("analysis complete",
		zap.String("provider", provider),
		zap.String("model", completion.Model),
		zap.Int("references", len(analysis.References)))
	return &model.Result{Error: rec, Analysis: &analysis}
}

func failure(rec model.ErrorRecord, message string) *model.Result {
	return &model.Result{Error: rec, AnalysisError: message}
}
