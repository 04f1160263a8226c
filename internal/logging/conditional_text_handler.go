package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/isseis/go-pathtoken/internal/terminal"
)

// Static errors for ConditionalTextHandler validation
var (
	ErrConditionalTextHandlerCapabilitiesRequired = errors.New("ConditionalTextHandler: Capabilities is required")
	ErrConditionalTextHandlerWriterRequired       = errors.New("ConditionalTextHandler: Writer is required")
)

// ConditionalTextHandler emits slog.TextHandler output only when the
// terminal is not interactive. It is the console handler for pipes, CI
// and redirected stderr; InteractiveHandler covers the other case.
type ConditionalTextHandler struct {
	capabilities terminal.Capabilities
	textHandler  slog.Handler
}

// ConditionalTextHandlerOptions configures the ConditionalTextHandler.
type ConditionalTextHandlerOptions struct {
	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities

	// TextHandlerOptions will be passed to slog.NewTextHandler
	TextHandlerOptions *slog.HandlerOptions

	// Writer is the output destination for the text handler
	Writer io.Writer

	// PathKeys names string attributes holding filesystem paths. Their
	// values are logged as path tokens, ahead of any ReplaceAttr in
	// TextHandlerOptions.
	PathKeys []string
}

// NewConditionalTextHandler creates a ConditionalTextHandler.
func NewConditionalTextHandler(opts ConditionalTextHandlerOptions) (*ConditionalTextHandler, error) {
	if opts.Capabilities == nil {
		return nil, ErrConditionalTextHandlerCapabilitiesRequired
	}
	if opts.Writer == nil {
		return nil, ErrConditionalTextHandlerWriterRequired
	}
	var handlerOpts slog.HandlerOptions
	if opts.TextHandlerOptions != nil {
		handlerOpts = *opts.TextHandlerOptions
	}
	if len(opts.PathKeys) > 0 {
		handlerOpts.ReplaceAttr = chainReplaceAttr(PathTokenReplacer(opts.PathKeys), handlerOpts.ReplaceAttr)
	}
	return &ConditionalTextHandler{
		capabilities: opts.Capabilities,
		textHandler:  slog.NewTextHandler(opts.Writer, &handlerOpts),
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConditionalTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.capabilities.IsInteractive() {
		return false
	}
	return h.textHandler.Enabled(ctx, level)
}

// Handle delegates to the text handler outside interactive terminals.
func (h *ConditionalTextHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.capabilities.IsInteractive() {
		return nil
	}
	return h.textHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with additional attributes.
func (h *ConditionalTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConditionalTextHandler{
		capabilities: h.capabilities,
		textHandler:  h.textHandler.WithAttrs(attrs),
	}
}

// WithGroup returns a new handler with an additional group.
func (h *ConditionalTextHandler) WithGroup(name string) slog.Handler {
	return &ConditionalTextHandler{
		capabilities: h.capabilities,
		textHandler:  h.textHandler.WithGroup(name),
	}
}
