package prompts

import (
	"fmt"

	"github.com/Rashidqf/ai-error-solution/pkg/model"
)

// BuildErrorPrompt renders the analysis prompt for a normalized error. The
// response format it asks for is what pkg/parser's section heuristics expect.
func BuildErrorPrompt(rec model.ErrorRecord) string {
	kind := rec.Kind
	if kind == "" {
		kind = "unknown"
	}

	return fmt.Sprintf(`You are a senior software engineer helping to debug a runtime error.

Error Type: %s
Error Message: %s

Stack Trace:
%s

Analyze this error and respond with exactly these numbered sections:

1. Explanation:
A short plain-English explanation of what happened.

2. Likely Causes:
A bulleted list of the most likely causes, most probable first.

3. Suggested Fixes:
A bulleted list of concrete fixes or debugging steps.

4. References:
Links to relevant documentation if you know any.

Be concise and specific to this error. Do not repeat the stack trace back.`,
		kind, rec.Message, rec.StackTrace)
}
