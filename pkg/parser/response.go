package parser

import "github.com/Rashidqf/ai-error-solution/pkg/model"

// Keyword sets used to locate each section in the AI response. Matching is
// substring based and case insensitive.
var (
	explanationKeywords = []string{"explanation", "plain-english", "what happened"}
	causeKeywords       = []string{"causes", "likely causes", "reasons"}
	fixKeywords         = []string{"fixes", "suggested fixes", "solutions", "fix"}
)

// ParseAIResponse converts a raw completion into a structured Analysis. It is
// a pure function with no failure mode: each section degrades to a preview of
// the raw text when its header cannot be located.
func ParseAIResponse(raw string) model.Analysis {
	return model.Analysis{
		Explanation: ExtractSection(raw, explanationKeywords),
		Causes:      ExtractSection(raw, causeKeywords),
		Fixes:       ExtractSection(raw, fixKeywords),
		References:  ExtractReferences(raw),
		Raw:         raw,
	}
}
