// Package processtest provides a scripted process.Invoker for tests.
package processtest

import (
	"context"
	"os/exec"
	"sync"

	"github.com/mj1618/desktopctl/internal/process"
)

// Stub is a canned response for commands whose argv starts with a prefix.
type Stub struct {
	prefix []string
	result process.Result
	launch bool
}

// Return makes the stub succeed with the given stdout.
func (s *Stub) Return(stdout string) *Stub {
	s.result = process.Result{Stdout: stdout}
	s.launch = false
	return s
}

// Fail makes the stub exit with code and stderr.
func (s *Stub) Fail(code int, stderr string) *Stub {
	s.result = process.Result{Stderr: stderr, ExitCode: code}
	s.launch = false
	return s
}

// FailWithOutput makes the stub exit with code, printing stdout and stderr.
func (s *Stub) FailWithOutput(code int, stdout, stderr string) *Stub {
	s.result = process.Result{Stdout: stdout, Stderr: stderr, ExitCode: code}
	s.launch = false
	return s
}

// Missing makes the stub behave like a program that is not installed.
func (s *Stub) Missing() *Stub {
	s.launch = true
	return s
}

// Recorder records every command it is asked to run and answers from the
// registered stubs. The stub with the longest matching prefix wins; commands
// with no matching stub succeed with empty output.
type Recorder struct {
	mu    sync.Mutex
	calls []process.Command
	stubs []*Stub
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// On registers a stub for commands starting with prefix.
func (r *Recorder) On(prefix ...string) *Stub {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Stub{prefix: prefix}
	r.stubs = append(r.stubs, s)
	return s
}

// Run implements process.Invoker.
func (r *Recorder) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recorded := process.Command{
		Args: append([]string(nil), cmd.Args...),
		Env:  append([]string(nil), cmd.Env...),
	}
	r.calls = append(r.calls, recorded)

	var best *Stub
	for _, s := range r.stubs {
		if hasPrefix(cmd.Args, s.prefix) && (best == nil || len(s.prefix) >= len(best.prefix)) {
			best = s
		}
	}
	if best == nil {
		return process.Result{}, nil
	}
	if best.launch {
		return process.Result{}, process.NewLaunchError(cmd, exec.ErrNotFound)
	}
	if best.result.ExitCode != 0 {
		return best.result, process.NewExternalToolError(cmd, best.result)
	}
	return best.result, nil
}

// Calls returns a copy of the recorded commands in order.
func (r *Recorder) Calls() []process.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]process.Command(nil), r.calls...)
}

// Argvs returns just the argv of each recorded command.
func (r *Recorder) Argvs() [][]string {
	calls := r.Calls()
	out := make([][]string, len(calls))
	for i, c := range calls {
		out[i] = c.Args
	}
	return out
}

func hasPrefix(args, prefix []string) bool {
	if len(prefix) > len(args) {
		return false
	}
	for i := range prefix {
		if args[i] != prefix[i] {
			return false
		}
	}
	return true
}
