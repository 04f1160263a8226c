package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/isseis/go-pathtoken/internal/color"
	"github.com/isseis/go-pathtoken/internal/terminal"
)

// Static errors for InteractiveHandler validation
var (
	ErrInteractiveHandlerWriterRequired       = errors.New("InteractiveHandler: Writer is required")
	ErrInteractiveHandlerCapabilitiesRequired = errors.New("InteractiveHandler: Capabilities is required")
)

// InteractiveHandler writes short human readable lines to an interactive
// terminal: "LEVEL message key=value ...", with the level colored when the
// terminal supports it.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	writer       io.Writer
	mu           *sync.Mutex
	level        slog.Leveler
	attrs        []slog.Attr
	groups       []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Leveler

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrInteractiveHandlerCapabilitiesRequired
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		writer:       opts.Writer,
		mu:           &sync.Mutex{},
		level:        level,
	}, nil
}

// Enabled reports whether the terminal is interactive and level is high enough.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.capabilities.IsInteractive() && level >= h.level.Level()
}

// Handle formats r as a single line and writes it.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelLabel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	prefix := groupPrefix(h.groups)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	prefix := groupPrefix(h.groups)
	clone.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		a.Key = prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup returns a new handler with an additional group.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func (h *InteractiveHandler) levelLabel(level slog.Level) string {
	if !h.capabilities.SupportsColor() {
		return level.String()
	}
	return color.ForLevel(level)(level.String())
}

func groupPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	return strings.Join(groups, ".") + "."
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		nested := prefix
		if a.Key != "" {
			nested += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, nested, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(a.Value.String()))
}

// quoteIfNeeded keeps console lines single-line: values with spaces, quotes
// or control characters are Go-quoted.
func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	if !utf8.ValidString(s) || strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || r == '"' || r == '='
	}) {
		return strconv.Quote(s)
	}
	return s
}
