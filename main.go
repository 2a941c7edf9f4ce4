package main

import (
	"fmt"
	"os"

	"github.com/Rashidqf/ai-error-solution/cmd"
	"github.com/Rashidqf/ai-error-solution/pkg/llm"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ai-error-solution",
		Short: "AI-powered runtime error analysis",
		Long: `ai-error-solution sends a runtime error and its stack trace to a large
language model and renders a structured explanation: what happened, the
likely causes, suggested fixes and documentation references.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(),
		newProvidersCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ai-error-solution version %s\n", version)
		},
	}
}

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported LLM providers and their default models",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range llm.NewFactory().GetAvailableProviders() {
				fmt.Printf("%-8s (default model: %s)\n", p, llm.DefaultModel(p))
			}
		},
	}
}
