package pathencoding

import (
	"strings"
	"unicode"
)

// NeedsEscaping reports whether text must be stored as an escaped token.
//
// Text needs escaping when it contains any Unicode control character, or
// when it already begins with Sentinel. The second rule keeps verbatim
// tokens and escaped tokens disjoint, so Decode never has to guess.
// The empty string is always safe.
func NeedsEscaping(text string) bool {
	if strings.HasPrefix(text, Sentinel) {
		return true
	}
	return strings.ContainsFunc(text, unicode.IsControl)
}
