// Package display renders paths for terminal listings.
package display

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Ellipsis marks text removed by TruncateLeft.
const Ellipsis = "…"

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// TruncateLeft shortens s to at most width cells by dropping grapheme
// clusters from the front and prefixing Ellipsis. The tail of a path is
// usually the part worth seeing.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	budget := width - uniseg.StringWidth(Ellipsis)
	if budget <= 0 {
		return Ellipsis
	}

	var clusters []string
	var widths []int
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
		widths = append(widths, gr.Width())
	}

	start := len(clusters)
	used := 0
	for i, w := range slices.Backward(widths) {
		if used+w > budget {
			break
		}
		used += w
		start = i
	}
	return Ellipsis + strings.Join(clusters[start:], "")
}

// Printable returns path unchanged when it is valid UTF-8 without control
// characters, and a Go-quoted form otherwise, so any path fits on one
// terminal line.
func Printable(path string) string {
	if utf8.ValidString(path) && !strings.ContainsFunc(path, unicode.IsControl) {
		return path
	}
	return strconv.Quote(path)
}
