package terminal

import "strings"

// colorTerminals lists TERM values (or prefixes) that are known to support
// basic terminal colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// SupportsColor returns true if color output should be enabled. Priority:
//  1. Command line options
//  2. CLICOLOR_FORCE (truthy)
//  3. NO_COLOR (any value, even empty)
//  4. Non-interactive sessions never use color
//  5. CLICOLOR
//  6. TERM capability detection
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.options.ForceColor {
		return true
	}
	if c.options.DisableColor {
		return false
	}
	if isTruthy(c.getenv("CLICOLOR_FORCE")) {
		return true
	}
	if _, exists := c.lookupEnv("NO_COLOR"); exists {
		return false
	}

	if !c.IsInteractive() || !c.termSupportsColor() {
		return false
	}

	// CLICOLOR is ignored for pipes, following the usual Unix behavior
	if cliColor := c.getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return true
}

// termSupportsColor checks the TERM environment variable
func (c *DefaultCapabilities) termSupportsColor() bool {
	term := strings.ToLower(strings.TrimSpace(c.getenv("TERM")))
	if term == "" || term == "dumb" {
		return false
	}

	for _, colorTerm := range colorTerminals {
		if term == colorTerm || strings.HasPrefix(term, colorTerm+"-") {
			return true
		}
	}

	// For unknown terminals, default to no color
	return false
}
