package terminal

import (
	"strconv"
	"strings"
)

// DefaultWidth is used when the output is not a terminal or its size is
// unknown.
const DefaultWidth = 80

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"BUILDKITE",              // Buildkite
	"TF_BUILD",               // Azure DevOps
}

// IsInteractive returns true if the current environment is interactive
func (c *DefaultCapabilities) IsInteractive() bool {
	// Priority 1: Command line options (highest priority)
	if c.options.ForceInteractive {
		return true
	}
	if c.options.ForceNonInteractive {
		return false
	}

	// Priority 2: CI environment detection
	if c.IsCIEnvironment() {
		return false
	}

	// Priority 3: Terminal detection
	return c.IsTerminal()
}

// IsTerminal checks if stdout and stderr are connected to a terminal
func (c *DefaultCapabilities) IsTerminal() bool {
	return c.isTerminal(c.stdoutFd) && c.isTerminal(c.stderrFd)
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (c *DefaultCapabilities) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := c.getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false or CI=0 should not be considered a CI environment
		if envVar == "CI" {
			lower := strings.ToLower(strings.TrimSpace(value))
			return lower != "false" && lower != "0" && lower != "no"
		}
		return true
	}
	return false
}

// Width returns the column count of stdout, or DefaultWidth when stdout is
// not a terminal. COLUMNS overrides detection.
func (c *DefaultCapabilities) Width() int {
	if columns := c.getenv("COLUMNS"); columns != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(columns)); err == nil && n > 0 {
			return n
		}
	}
	if !c.isTerminal(c.stdoutFd) {
		return DefaultWidth
	}
	width, _, err := c.getSize(c.stdoutFd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
