package ranking

import (
	"regexp"
	"strings"
)

// WordMatch reports whether term occurs in text as a whole word,
// case-insensitively. A plain substring test would match "Ana" inside
// "Banana"; the word-boundary anchors prevent that.
func WordMatch(term, text string) bool {
	term = strings.TrimSpace(term)
	if term == "" || text == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		// QuoteMeta makes the pattern safe; treat a failure as no match.
		return false
	}
	return re.MatchString(text)
}

// equalFold trims and compares two names case-insensitively.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
