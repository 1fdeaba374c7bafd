// Package session resolves the X display and authorization credential that
// every child process runs under.
package session

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mj1618/desktopctl/internal/errs"
)

const (
	DisplayVar    = "DISPLAY"
	XAuthorityVar = "XAUTHORITY"
)

// inherited is the part of the parent environment the resolver reads.
type inherited struct {
	Display    string `env:"DISPLAY"`
	XAuthority string `env:"XAUTHORITY"`
}

// Overrides holds explicit --display / --xauthority values. Empty means unset.
type Overrides struct {
	Display    string
	XAuthority string
}

// Env is the resolved execution environment. It is immutable once built.
type Env struct {
	display    string
	xauthority string
	environ    []string
}

// Resolve builds the execution environment from the inherited environment
// (as returned by os.Environ) and the explicit overrides. Flags win over
// inherited variables. A missing display is an EnvironmentError; a missing
// XAUTHORITY is not.
func Resolve(environ []string, o Overrides) (Env, error) {
	var in inherited
	if err := env.ParseWithOptions(&in, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return Env{}, &errs.EnvironmentError{Msg: fmt.Sprintf("read environment: %v", err)}
	}

	display := o.Display
	if display == "" {
		display = in.Display
	}
	if display == "" {
		return Env{}, &errs.EnvironmentError{
			Msg:  "no DISPLAY available",
			Hint: "set DISPLAY (and XAUTHORITY if your session needs it) or pass --display/--xauthority",
		}
	}

	xauth := o.XAuthority
	if xauth == "" {
		xauth = in.XAuthority
	}

	out := make([]string, 0, len(environ)+2)
	for _, kv := range environ {
		k, _, _ := strings.Cut(kv, "=")
		if k == DisplayVar || k == XAuthorityVar {
			continue
		}
		out = append(out, kv)
	}
	out = append(out, DisplayVar+"="+display)
	if xauth != "" {
		out = append(out, XAuthorityVar+"="+xauth)
	}

	return Env{display: display, xauthority: xauth, environ: out}, nil
}

// Display returns the resolved display identifier.
func (e Env) Display() string { return e.display }

// XAuthority returns the resolved credential path, or "" when none is set.
func (e Env) XAuthority() string { return e.xauthority }

// Environ returns a copy of the environment in KEY=VALUE form, suitable for
// exec.Cmd.Env.
func (e Env) Environ() []string {
	out := make([]string, len(e.environ))
	copy(out, e.environ)
	return out
}

// Lookup returns the value of key in the resolved environment.
func (e Env) Lookup(key string) (string, bool) {
	prefix := key + "="
	for _, kv := range e.environ {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}

// IsZero reports whether e was never resolved.
func (e Env) IsZero() bool { return e.display == "" }
