package platform

import (
	"errors"

	"github.com/mj1618/desktopctl/internal/config"
	"github.com/mj1618/desktopctl/internal/process"
	"github.com/mj1618/desktopctl/internal/session"
)

// Provider bundles the backends for the current display server.
type Provider struct {
	Inputter      Inputter
	WindowManager WindowManager
	Screenshotter Screenshotter
	Opener        URLOpener
}

// Options carries everything a backend needs to build its Provider.
type Options struct {
	Env     session.Env
	Invoker process.Invoker
	Config  config.Config
}

// ErrUnsupported is returned when no backend has been registered.
var ErrUnsupported = errors.New("desktopctl: no display backend registered; only X11 is supported")

// NewProviderFunc is set by backend packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns the Provider of the registered backend.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
