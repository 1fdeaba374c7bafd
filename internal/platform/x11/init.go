package x11

import "github.com/mj1618/desktopctl/internal/platform"

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		if err := opts.Config.Validate(); err != nil {
			return nil, err
		}
		r := &runner{env: opts.Env, invoker: opts.Invoker}
		return &platform.Provider{
			Inputter:      NewInputter(r, opts.Config.Xdotool),
			WindowManager: NewWindowManager(r, opts.Config.Xdotool),
			Screenshotter: NewScreenshotter(r, opts.Config.Scrot),
			Opener:        NewOpener(r, opts.Config.Openers),
		}, nil
	}
}
