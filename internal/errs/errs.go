// Package errs defines the failure kinds surfaced by desktopctl and the process
// exit code each kind maps to.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. Automation built on top of desktopctl can branch on these.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitEnvironment  = 3
	ExitNotFound     = 4
	ExitLaunchFailed = 127
)

// UsageError reports malformed or missing command-line arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef returns a UsageError with a formatted message.
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// EnvironmentError reports that the session environment could not be resolved.
type EnvironmentError struct {
	Msg  string
	Hint string
}

func (e *EnvironmentError) Error() string {
	if e.Hint == "" {
		return e.Msg
	}
	return e.Msg + "; " + e.Hint
}

// LaunchError reports that an external program could not be started at all.
type LaunchError struct {
	Program string
	Package string // distribution package providing Program, if known
	Err     error
}

func (e *LaunchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot launch %s", e.Program)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Package != "" {
		fmt.Fprintf(&b, " (install it, Debian/Ubuntu: sudo apt-get install -y %s)", e.Package)
	}
	return b.String()
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExternalToolError reports that an external program ran and exited non-zero.
// Stderr holds the program's captured standard error verbatim.
type ExternalToolError struct {
	Action   string
	Program  string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExternalToolError) Error() string {
	var b strings.Builder
	if e.Action != "" {
		b.WriteString(e.Action)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s exited with status %d", e.Program, e.ExitCode)
	// Stderr is kept as captured; only the line terminator is dropped here.
	if stderr := strings.TrimRight(e.Stderr, "\r\n"); stderr != "" {
		b.WriteString(": ")
		b.WriteString(stderr)
	}
	return b.String()
}

// NotFoundError reports that a query matched nothing.
type NotFoundError struct {
	What  string
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", e.What, e.Query)
}

// WithAction attributes an ExternalToolError anywhere in err's chain to the
// named action. Other errors are returned unchanged.
func WithAction(err error, action string) error {
	var toolErr *ExternalToolError
	if !errors.As(err, &toolErr) || toolErr.Action != "" {
		return err
	}
	attributed := *toolErr
	attributed.Action = action
	return &attributed
}

// ExitCode maps err to the process exit code for its kind.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		usageErr  *UsageError
		envErr    *EnvironmentError
		launchErr *LaunchError
		notFound  *NotFoundError
	)
	switch {
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &envErr):
		return ExitEnvironment
	case errors.As(err, &launchErr):
		return ExitLaunchFailed
	case errors.As(err, &notFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}

// Kind names the failure kind of err for logs and metrics labels.
func Kind(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		usageErr  *UsageError
		envErr    *EnvironmentError
		launchErr *LaunchError
		toolErr   *ExternalToolError
		notFound  *NotFoundError
	)
	switch {
	case errors.As(err, &usageErr):
		return "usage"
	case errors.As(err, &envErr):
		return "environment"
	case errors.As(err, &launchErr):
		return "launch"
	case errors.As(err, &toolErr):
		return "external_tool"
	case errors.As(err, &notFound):
		return "not_found"
	default:
		return "error"
	}
}
