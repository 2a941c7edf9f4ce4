package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rashidqf/ai-error-solution/pkg/config"
	"github.com/Rashidqf/ai-error-solution/pkg/formatter"
	"github.com/Rashidqf/ai-error-solution/pkg/model"
	"github.com/Rashidqf/ai-error-solution/pkg/solution"
)

var (
	configPath   string
	providerName string
	modelName    string
	stackTrace   string
	stackFile    string
	timeout      time.Duration
	maxRetries   int
	outputFormat string
	verbose      bool
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze MESSAGE",
		Short: "Analyze a runtime error with AI assistance",
		Long: `Send an error message and its stack trace to an LLM provider and print a
structured analysis.

Examples:
  # Analyze an error message
  ai-error-solution analyze "TypeError: cannot read property 'id' of undefined"

  # Include a stack trace from a file
  ai-error-solution analyze "connection refused" --stack-file crash.log

  # Pipe the stack trace on stdin
  ./my-app 2>&1 | ai-error-solution analyze "worker crashed" --stack-file -

  # Machine-readable output with a specific provider
  ai-error-solution analyze "segfault in worker" --provider openai -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	// Flags
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default ~/.ai-error-solution.yaml)")
	cmd.Flags().StringVar(&providerName, "provider", "", "LLM provider (claude, openai, gemini)")
	cmd.Flags().StringVar(&modelName, "model", "", "Model identifier (provider default if empty)")
	cmd.Flags().StringVar(&stackTrace, "stack", "", "Stack trace text")
	cmd.Flags().StringVar(&stackFile, "stack-file", "", "File with the stack trace, or - for stdin")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-attempt provider call timeout")
	cmd.Flags().IntVar(&maxRetries, "retries", -1, "Retry attempts after the first failure")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	message := args[0]

	// The provider flag has to land before Load so validation checks the
	// right provider's API key.
	if providerName != "" {
		os.Setenv("AI_SOLUTION_PROVIDER", strings.ToLower(providerName))
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	stack, err := resolveStack()
	if err != nil {
		return err
	}

	opts := []solution.Option{}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		opts = append(opts, solution.WithLogger(logger))
	}

	client, err := solution.New(cfg, opts...)
	if err != nil {
		return err
	}

	if outputFormat == "human" {
		printHeader(message, cfg)
	}

	// Create spinner for visual feedback
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Analyzing error with AI..."
	if outputFormat == "human" {
		s.Start()
	}

	rec := model.ErrorRecord{Message: message, StackTrace: stack}
	result := client.FixError(context.Background(), rec, solution.Options{Silent: true})

	s.Stop()
	if result.Failed() {
		if outputFormat == "human" {
			printError("Analysis failed")
		}
		return fmt.Errorf("%s", result.AnalysisError)
	}
	if outputFormat == "human" {
		printSuccess("Analysis complete")
	}

	return formatter.DisplayResults(result, outputFormat)
}

func applyFlagOverrides(cfg *config.Config) {
	if modelName != "" {
		cfg.Model = modelName
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	if maxRetries >= 0 {
		cfg.MaxRetries = maxRetries
	}
}

func resolveStack() (string, error) {
	if stackTrace != "" {
		return stackTrace, nil
	}
	switch stackFile {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stack trace from stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		data, err := os.ReadFile(stackFile)
		if err != nil {
			return "", fmt.Errorf("read stack trace file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
}

func printHeader(message string, cfg *config.Config) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🔍 AI Error Analysis")
	fmt.Printf("📝 Error: %s\n", message)
	fmt.Printf("🤖 Provider: %s\n", cfg.Provider)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}
