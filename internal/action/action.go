// Package action implements the desktopctl actions. Each action takes a
// validated request, drives one platform backend and returns a result that
// can be rendered as text, yaml or json.
package action

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/platform"
)

// Names of the actions, in the order they are listed in help output.
const (
	NameScreenshot = "screenshot"
	NameClick      = "click"
	NameType       = "type"
	NameKey        = "key"
	NameWhere      = "where"
	NameWindows    = "windows"
	NameActivate   = "activate"
	NameOpen       = "open"
)

// screenshotLayout is the timestamp part of auto-named screenshots. The
// millisecond field keeps consecutive captures in the same second apart.
const screenshotLayout = "20060102-150405.000"

// Runner executes actions against a Provider.
type Runner struct {
	provider      *platform.Provider
	now           func() time.Time
	screenshotDir string
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock used to name screenshots.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithScreenshotDir sets the directory for auto-named screenshots.
func WithScreenshotDir(dir string) Option {
	return func(r *Runner) { r.screenshotDir = dir }
}

// NewRunner returns a Runner over provider.
func NewRunner(provider *platform.Provider, opts ...Option) *Runner {
	r := &Runner{
		provider:      provider,
		now:           time.Now,
		screenshotDir: "tmp",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultScreenshotPath returns the auto-generated screenshot path in dir.
func DefaultScreenshotPath(dir string, t time.Time) string {
	return filepath.Join(dir, "desktop-"+t.UTC().Format(screenshotLayout)+".png")
}

func (r *Runner) Screenshot(ctx context.Context, req ScreenshotRequest) (ScreenshotResult, error) {
	if err := req.Validate(); err != nil {
		return ScreenshotResult{}, err
	}
	if r.provider.Screenshotter == nil {
		return ScreenshotResult{}, unavailable(NameScreenshot)
	}

	path := req.Out
	if path == "" {
		dir := req.OutDir
		if dir == "" {
			dir = r.screenshotDir
		}
		path = DefaultScreenshotPath(dir, r.now())
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ScreenshotResult{}, fmt.Errorf("resolve screenshot path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return ScreenshotResult{}, fmt.Errorf("create screenshot directory: %w", err)
	}

	if err := r.provider.Screenshotter.Capture(ctx, abs); err != nil {
		return ScreenshotResult{}, errs.WithAction(err, NameScreenshot)
	}
	return ScreenshotResult{OK: true, Action: NameScreenshot, Path: abs}, nil
}

func (r *Runner) Click(ctx context.Context, req ClickRequest) (ClickResult, error) {
	if err := req.Validate(); err != nil {
		return ClickResult{}, err
	}
	if r.provider.Inputter == nil {
		return ClickResult{}, unavailable(NameClick)
	}
	if err := r.provider.Inputter.Click(ctx, req.X, req.Y, req.Button); err != nil {
		return ClickResult{}, errs.WithAction(err, NameClick)
	}
	return ClickResult{OK: true, Action: NameClick, X: req.X, Y: req.Y, Button: int(req.Button)}, nil
}

func (r *Runner) Type(ctx context.Context, req TypeRequest) (TypeResult, error) {
	if err := req.Validate(); err != nil {
		return TypeResult{}, err
	}
	if r.provider.Inputter == nil {
		return TypeResult{}, unavailable(NameType)
	}
	if err := r.provider.Inputter.TypeText(ctx, req.Text, req.DelayMs); err != nil {
		return TypeResult{}, errs.WithAction(err, NameType)
	}
	return TypeResult{OK: true, Action: NameType, Typed: req.Text}, nil
}

func (r *Runner) Key(ctx context.Context, req KeyRequest) (KeyResult, error) {
	if err := req.Validate(); err != nil {
		return KeyResult{}, err
	}
	if r.provider.Inputter == nil {
		return KeyResult{}, unavailable(NameKey)
	}
	if err := r.provider.Inputter.KeyCombo(ctx, req.Keys); err != nil {
		return KeyResult{}, errs.WithAction(err, NameKey)
	}
	return KeyResult{OK: true, Action: NameKey, Keys: req.Keys}, nil
}

func (r *Runner) Where(ctx context.Context) (WhereResult, error) {
	if r.provider.Inputter == nil {
		return WhereResult{}, unavailable(NameWhere)
	}
	p, err := r.provider.Inputter.MouseLocation(ctx)
	if err != nil {
		return WhereResult{}, errs.WithAction(err, NameWhere)
	}
	return WhereResult{OK: true, Action: NameWhere, X: p.X, Y: p.Y, Screen: p.Screen, Window: p.Window}, nil
}

func (r *Runner) Windows(ctx context.Context) (WindowsResult, error) {
	if r.provider.WindowManager == nil {
		return WindowsResult{}, unavailable(NameWindows)
	}
	windows, err := r.provider.WindowManager.ListWindows(ctx)
	if err != nil {
		return WindowsResult{}, errs.WithAction(err, NameWindows)
	}
	return WindowsResult{OK: true, Action: NameWindows, Windows: windows}, nil
}

// Activate focuses the first window, in the order the window manager lists
// them, whose title contains req.Title. Matching is case-sensitive.
func (r *Runner) Activate(ctx context.Context, req ActivateRequest) (ActivateResult, error) {
	if err := req.Validate(); err != nil {
		return ActivateResult{}, err
	}
	if r.provider.WindowManager == nil {
		return ActivateResult{}, unavailable(NameActivate)
	}
	windows, err := r.provider.WindowManager.ListWindows(ctx)
	if err != nil {
		return ActivateResult{}, errs.WithAction(err, NameActivate)
	}
	for _, w := range windows {
		if !strings.Contains(w.Title, req.Title) {
			continue
		}
		if err := r.provider.WindowManager.ActivateWindow(ctx, w.ID); err != nil {
			return ActivateResult{}, errs.WithAction(err, NameActivate)
		}
		return ActivateResult{OK: true, Action: NameActivate, ID: w.ID, Title: w.Title}, nil
	}
	return ActivateResult{}, &errs.NotFoundError{What: "window", Query: req.Title}
}

func (r *Runner) Open(ctx context.Context, req OpenRequest) (OpenResult, error) {
	if err := req.Validate(); err != nil {
		return OpenResult{}, err
	}
	if r.provider.Opener == nil {
		return OpenResult{}, unavailable(NameOpen)
	}
	opener, err := r.provider.Opener.OpenURL(ctx, req.URL)
	if err != nil {
		return OpenResult{}, errs.WithAction(err, NameOpen)
	}
	return OpenResult{OK: true, Action: NameOpen, URL: req.URL, Opener: opener}, nil
}

func unavailable(action string) error {
	return fmt.Errorf("%s: not available on this display backend", action)
}
