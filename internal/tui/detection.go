package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are set by the CI systems revcheck typically runs in.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"TF_BUILD",
	"PRE_COMMIT",
}

// Function variables for testability.
var (
	isTerminalFn = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
	}
	lookupEnvFn = os.LookupEnv
)

// IsInteractive reports whether prompts can be shown: stdout must be a
// terminal and no CI or pre-commit environment may be detected.
func IsInteractive() bool {
	if !isTerminalFn() {
		return false
	}
	return !InCI()
}

// InCI reports whether a CI environment variable is set to a non-empty value.
func InCI() bool {
	for _, env := range ciEnvVars {
		if v, ok := lookupEnvFn(env); ok && v != "" {
			return true
		}
	}
	return false
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminalFn()
}
