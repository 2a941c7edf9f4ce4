package solution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rashidqf/ai-error-solution/pkg/config"
	"github.com/Rashidqf/ai-error-solution/pkg/llm"
	"github.com/Rashidqf/ai-error-solution/pkg/model"
)

const stubResponse = `1. Explanation:
Null pointer when object is undefined.

2. Causes:
- Missing initialization
- Async timing issue

3. Fixes:
- Add a null check
See https://example.com/docs.
`

type stubLLM struct {
	response string
	err      error
	failures int // fail this many calls before succeeding
	calls    int
}

func (s *stubLLM) Complete(ctx context.Context, prompt string) (*llm.Completion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.calls <= s.failures {
		return nil, errors.New("transient provider failure")
	}
	return &llm.Completion{Content: s.response, Model: "stub-model"}, nil
}

func (s *stubLLM) Model() string { return "stub-model" }

type recordingReporter struct {
	analyses []*model.Analysis
	failures []string
}

func (r *recordingReporter) ReportAnalysis(rec model.ErrorRecord, analysis *model.Analysis) {
	r.analyses = append(r.analyses, analysis)
}

func (r *recordingReporter) ReportFailure(rec model.ErrorRecord, message string) {
	r.failures = append(r.failures, message)
}

func testConfig() *config.Config {
	return &config.Config{
		Provider:   "claude",
		APIKey:     "test-key",
		Timeout:    time.Second,
		MaxRetries: 0,
	}
}

func fastRetrier(maxRetries int) *llm.Retrier {
	return &llm.Retrier{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		Logger:          zap.NewNop(),
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, config.ErrNotInitialized)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(&config.Config{Provider: "claude"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key configured")
}

func TestFixError_Silent_Success(t *testing.T) {
	stub := &stubLLM{response: stubResponse}
	client, err := New(testConfig(), WithLLM(stub))
	require.NoError(t, err)

	result := client.FixError(context.Background(), errors.New("x is undefined"), Options{Silent: true})

	require.False(t, result.Failed())
	require.NotNil(t, result.Analysis)
	assert.Equal(t, "x is undefined", result.Error.Message)
	assert.Equal(t, "Null pointer when object is undefined.", result.Analysis.Explanation)
	assert.Contains(t, result.Analysis.Causes, "- Missing initialization")
	assert.Contains(t, result.Analysis.Fixes, "- Add a null check")
	assert.Equal(t, []string{"https://example.com/docs"}, result.Analysis.References)
	assert.Equal(t, 1, stub.calls)
}

func TestFixError_Silent_ProviderFailure(t *testing.T) {
	stub := &stubLLM{err: errors.New("upstream unreachable")}
	client, err := New(testConfig(), WithLLM(stub), WithRetrier(fastRetrier(1)))
	require.NoError(t, err)

	result := client.FixError(context.Background(), "it broke", Options{Silent: true})

	require.True(t, result.Failed())
	assert.Nil(t, result.Analysis)
	assert.Equal(t, "it broke", result.Error.Message)
	assert.Contains(t, result.AnalysisError, "upstream unreachable")
	// Initial attempt plus one retry.
	assert.Equal(t, 2, stub.calls)
}

func TestFixError_RetriesThenSucceeds(t *testing.T) {
	stub := &stubLLM{response: stubResponse, failures: 2}
	client, err := New(testConfig(), WithLLM(stub), WithRetrier(fastRetrier(2)))
	require.NoError(t, err)

	result := client.FixError(context.Background(), "flaky", Options{Silent: true})

	require.False(t, result.Failed())
	assert.Equal(t, 3, stub.calls)
}

func TestFixError_NonSilent_UsesReporter(t *testing.T) {
	stub := &stubLLM{response: stubResponse}
	reporter := &recordingReporter{}
	client, err := New(testConfig(), WithLLM(stub), WithReporter(reporter))
	require.NoError(t, err)

	client.FixError(context.Background(), "visible failure", Options{})

	require.Len(t, reporter.analyses, 1)
	assert.Empty(t, reporter.failures)
}

func TestFixError_NonSilent_ReportsFailure(t *testing.T) {
	stub := &stubLLM{err: errors.New("no route to host")}
	reporter := &recordingReporter{}
	client, err := New(testConfig(), WithLLM(stub), WithReporter(reporter))
	require.NoError(t, err)

	client.FixError(context.Background(), "net down", Options{})

	require.Len(t, reporter.failures, 1)
	assert.Contains(t, reporter.failures[0], "no route to host")
	assert.Empty(t, reporter.analyses)
}

func TestFixError_NormalizesInputVariants(t *testing.T) {
	stub := &stubLLM{response: stubResponse}
	client, err := New(testConfig(), WithLLM(stub))
	require.NoError(t, err)

	rec := model.ErrorRecord{Kind: "TypeError", Message: "x is undefined", StackTrace: "at main()"}
	result := client.FixError(context.Background(), rec, Options{Silent: true})
	assert.Equal(t, rec, result.Error)

	result = client.FixError(context.Background(), nil, Options{Silent: true})
	assert.Equal(t, model.UnknownMessage, result.Error.Message)
}

func TestPackageLevelFixError_NotInitialized(t *testing.T) {
	Reset()

	result := FixError(context.Background(), errors.New("x is undefined"), Options{Silent: true})

	require.True(t, result.Failed())
	assert.Nil(t, result.Analysis)
	assert.Equal(t, "x is undefined", result.Error.Message)
	assert.Contains(t, result.AnalysisError, "ai-error-solution: Package not initialized")
}

func TestPackageLevelInitAndFixError(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	stub := &stubLLM{response: stubResponse}
	require.NoError(t, Init(testConfig(), WithLLM(stub)))

	result := FixError(context.Background(), "boom", Options{Silent: true})
	require.False(t, result.Failed())
	require.NotNil(t, result.Analysis)
}

func TestInit_RejectsInvalidConfig(t *testing.T) {
	Reset()
	require.Error(t, Init(&config.Config{Provider: "claude"}))
}
