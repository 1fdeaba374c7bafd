package x11

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/process"
	"github.com/mj1618/desktopctl/internal/session"
)

// installPackages maps collaborator programs to the Debian/Ubuntu package
// that ships them.
var installPackages = map[string]string{
	"xdotool":          "xdotool",
	"scrot":            "scrot",
	"xdg-open":         "xdg-utils",
	"gio":              "libglib2.0-bin",
	"chromium-browser": "chromium-browser",
}

// runner runs collaborator programs under the session environment.
type runner struct {
	env     session.Env
	invoker process.Invoker
}

func (r *runner) run(ctx context.Context, args ...string) (process.Result, error) {
	res, err := r.invoker.Run(ctx, process.Command{Args: args, Env: r.env.Environ()})
	return res, withInstallHint(err)
}

func withInstallHint(err error) error {
	var launchErr *errs.LaunchError
	if !errors.As(err, &launchErr) || launchErr.Package != "" {
		return err
	}
	pkg, ok := installPackages[filepath.Base(launchErr.Program)]
	if !ok {
		return err
	}
	hinted := *launchErr
	hinted.Package = pkg
	return &hinted
}
