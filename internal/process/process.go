// Package process runs external programs to completion and captures their
// output. It does not retry and imposes no timeout of its own; callers bound
// execution through the context.
package process

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/mj1618/desktopctl/internal/errs"
)

// Command is an argv plus the environment (KEY=VALUE) to run it under.
type Command struct {
	Args []string
	Env  []string
}

// Program returns the program name, argv[0].
func (c Command) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

func (c Command) String() string { return strings.Join(c.Args, " ") }

// Result is the captured outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Invoker runs commands. A program that cannot be started yields
// *errs.LaunchError; a program that exits non-zero yields the Result together
// with *errs.ExternalToolError.
type Invoker interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecInvoker runs commands as real OS processes.
type ExecInvoker struct {
	logger *slog.Logger
}

// NewExecInvoker returns an ExecInvoker that logs launches to logger.
func NewExecInvoker(logger *slog.Logger) *ExecInvoker {
	return &ExecInvoker{logger: logger}
}

// Run implements Invoker.
func (i *ExecInvoker) Run(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Args) == 0 {
		return Result{}, errors.New("process: empty command")
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	c.Env = cmd.Env
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	i.logger.Debug("exec", "argv", cmd.Args)
	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			i.logger.Debug("exec failed to start", "program", cmd.Program(), "error", err)
			return Result{}, NewLaunchError(cmd, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	i.logger.Debug("exec finished",
		"program", cmd.Program(),
		"exit", res.ExitCode,
		"duration", time.Since(start),
	)
	if res.ExitCode != 0 {
		return res, NewExternalToolError(cmd, res)
	}
	return res, nil
}

// NewLaunchError describes a command that could not be started.
func NewLaunchError(cmd Command, err error) *errs.LaunchError {
	return &errs.LaunchError{Program: cmd.Program(), Err: err}
}

// NewExternalToolError describes a command that exited non-zero.
func NewExternalToolError(cmd Command, res Result) *errs.ExternalToolError {
	return &errs.ExternalToolError{
		Program:  cmd.Program(),
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
	}
}
