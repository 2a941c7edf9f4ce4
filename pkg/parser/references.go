package parser

import "regexp"

var urlRe = regexp.MustCompile(`https?://\S+`)

// trailing punctuation that belongs to the surrounding sentence, not the URL
const trailingPunct = ")]>,."

// ExtractReferences returns every URL in text, in order of appearance, with
// any run of trailing sentence punctuation stripped. Duplicates are kept.
func ExtractReferences(text string) []string {
	matches := urlRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		for len(m) > 0 && isTrailingPunct(m[len(m)-1]) {
			m = m[:len(m)-1]
		}
		if m != "" {
			refs = append(refs, m)
		}
	}
	return refs
}

func isTrailingPunct(c byte) bool {
	for i := 0; i < len(trailingPunct); i++ {
		if trailingPunct[i] == c {
			return true
		}
	}
	return false
}
