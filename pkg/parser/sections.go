package parser

import (
	"regexp"
	"strings"
)

const fallbackPreviewLen = 200

var (
	// "1. Explanation:" style top-level headers.
	numberedHeaderRe = regexp.MustCompile(`^\s*\d+\.\s+[A-Z]`)
	// "- item" / "* item" bullets.
	bulletRe = regexp.MustCompile(`^\s*[-*•]\s+`)
	// "Suggested Fixes:" style headers (capitalized, more than 3 chars, colon).
	titledHeaderRe = regexp.MustCompile(`^[A-Z][^:]{3,}:`)
)

// Keywords whose presence marks a line as the start of a documentation or
// reference section. Hitting one of these while capturing ends the section.
var referenceKeywords = []string{
	"reference",
	"documentation",
	"docs",
	"link",
	"resources",
	"see also",
	"further reading",
	"learn more",
}

// ExtractSection pulls the body of the first section whose header line
// contains one of keywords (lowercase) together with a colon or a markdown
// emphasis marker. The header line itself is not emitted. Capturing stops at
// the next reference-style section, at a numbered header that matches none of
// the keywords, or after two consecutive blank lines. Keyword matching is
// substring based, so a keyword buried in prose without a colon or emphasis
// marker is deliberately not treated as a header.
//
// If no header is found, or the captured body is empty, the first 200
// characters of the full text are returned with an ellipsis so the caller
// always has something to show.
func ExtractSection(text string, keywords []string) string {
	lines := strings.Split(text, "\n")
	var captured []string
	capturing := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		lower := strings.ToLower(line)

		if !capturing {
			if isSectionHeader(line, lower, keywords) {
				capturing = true
			}
			continue
		}

		// Reference/documentation sections end capture outright; the check
		// runs before the numbered-header hand-off on purpose.
		if isTopLevelHeader(line) && containsAny(lower, referenceKeywords) {
			break
		}
		if numberedHeaderRe.MatchString(line) && !containsAny(lower, keywords) {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(captured) > 0 && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "" {
				break
			}
			continue
		}
		captured = append(captured, trimmed)
	}

	result := strings.Join(captured, "\n")
	if result == "" {
		return fallbackPreview(text)
	}
	return result
}

func isSectionHeader(line, lower string, keywords []string) bool {
	if !containsAny(lower, keywords) {
		return false
	}
	return strings.Contains(line, ":") || strings.Contains(line, "**")
}

func isTopLevelHeader(line string) bool {
	return numberedHeaderRe.MatchString(line) ||
		bulletRe.MatchString(line) ||
		titledHeaderRe.MatchString(line)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func fallbackPreview(text string) string {
	runes := []rune(text)
	if len(runes) > fallbackPreviewLen {
		runes = runes[:fallbackPreviewLen]
	}
	return string(runes) + "..."
}
