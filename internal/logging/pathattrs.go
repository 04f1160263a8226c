package logging

import (
	"log/slog"
	"slices"

	"github.com/isseis/go-pathtoken/internal/pathencoding"
)

// DefaultPathKeys are the attribute keys the commands use for filesystem paths.
var DefaultPathKeys = []string{"path", "file", "dir"}

// PathTokenReplacer returns a slog ReplaceAttr function that rewrites string
// attributes named by keys into path tokens. Awkward paths then reach text
// and JSON logs in the same reversible form the MRU file uses, instead of
// being quoted by the text handler or turned into U+FFFD by the JSON one.
// Paths that need no escaping pass through unchanged. Keys match in any group.
func PathTokenReplacer(keys []string) func(groups []string, a slog.Attr) slog.Attr {
	keys = slices.Clone(keys)
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Value.Kind() != slog.KindString || !slices.Contains(keys, a.Key) {
			return a
		}
		return slog.String(a.Key, pathencoding.Encode(a.Value.String()))
	}
}

// chainReplaceAttr runs first, then second on the result. Either may be nil.
func chainReplaceAttr(first, second func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		return second(groups, first(groups, a))
	}
}
