package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Rashidqf/ai-error-solution/pkg/model"
)

// DisplayResults formats and displays an analysis result
func DisplayResults(result *model.Result, format string) error {
	switch format {
	case "json":
		return displayJSON(result)
	case "yaml":
		return displayYAML(result)
	case "human":
		fallthrough
	default:
		displayHuman(result)
	}
	return nil
}

func displayJSON(result *model.Result) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(result *model.Result) error {
	output, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(result *model.Result) {
	if result == nil {
		return
	}
	if result.Failed() || result.Analysis == nil {
		printFailure(result.Error, result.AnalysisError)
		return
	}
	printAnalysis(result.Error, result.Analysis)
}

func printAnalysis(rec model.ErrorRecord, analysis *model.Analysis) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	red.Println("💥 ERROR:")
	fmt.Printf("   %s\n", rec.Message)
	if rec.Kind != "" && rec.Kind != "unknown" {
		fmt.Printf("   Type: %s\n", rec.Kind)
	}
	fmt.Println()

	white.Println("💡 EXPLANATION:")
	fmt.Println(wrapText(analysis.Explanation, 80, "   "))
	fmt.Println()

	yellow.Println("⚠️  LIKELY CAUSES:")
	fmt.Println(wrapText(analysis.Causes, 80, "   "))
	fmt.Println()

	green.Println("🚀 SUGGESTED FIXES:")
	fmt.Println(wrapText(analysis.Fixes, 80, "   "))
	fmt.Println()

	if len(analysis.References) > 0 {
		cyan.Println("🔗 REFERENCES:")
		for _, ref := range analysis.References {
			fmt.Printf("   %s\n", color.CyanString(ref))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func printFailure(rec model.ErrorRecord, message string) {
	red := color.New(color.FgRed, color.Bold)

	fmt.Println()
	red.Println("💥 ERROR:")
	fmt.Printf("   %s\n", rec.Message)
	fmt.Println()
	red.Println("✗ AI ANALYSIS FAILED:")
	fmt.Printf("   %s\n", message)
	fmt.Println()
}

// ConsoleReporter renders analysis outcomes to the console. It is the
// default reporting sink for non-silent analysis.
type ConsoleReporter struct{}

func (ConsoleReporter) ReportAnalysis(rec model.ErrorRecord, analysis *model.Analysis) {
	printAnalysis(rec, analysis)
}

func (ConsoleReporter) ReportFailure(rec model.ErrorRecord, message string) {
	printFailure(rec, message)
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
