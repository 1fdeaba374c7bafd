package action

import (
	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/platform"
)

// Requests are validated before any external command is built. The
// mapstructure tags name the MCP tool arguments.

// ScreenshotRequest captures the screen to Out, or to a timestamped file in
// OutDir when Out is empty.
type ScreenshotRequest struct {
	Out    string `mapstructure:"out"`
	OutDir string `mapstructure:"out_dir"`
}

func (r ScreenshotRequest) Validate() error { return nil }

// ClickRequest clicks Button at (X, Y).
type ClickRequest struct {
	X      int                  `mapstructure:"x"`
	Y      int                  `mapstructure:"y"`
	Button platform.MouseButton `mapstructure:"button"`
}

func (r ClickRequest) Validate() error {
	if !r.Button.Valid() {
		return errs.Usagef("invalid --button %d (choose from 1, 2, 3)", int(r.Button))
	}
	return nil
}

// TypeRequest types Text literally. An empty Text is allowed and types
// nothing.
type TypeRequest struct {
	Text    string `mapstructure:"text"`
	DelayMs int    `mapstructure:"delay"`
}

func (r TypeRequest) Validate() error {
	if r.DelayMs < 0 {
		return errs.Usagef("invalid --delay %d (must be >= 0)", r.DelayMs)
	}
	return nil
}

// KeyRequest sends the key or chord Keys.
type KeyRequest struct {
	Keys string `mapstructure:"keys"`
}

func (r KeyRequest) Validate() error {
	if r.Keys == "" {
		return errs.Usagef("missing required argument KEYSPEC")
	}
	return nil
}

// ActivateRequest focuses the first window whose title contains Title.
type ActivateRequest struct {
	Title string `mapstructure:"title"`
}

func (r ActivateRequest) Validate() error {
	if r.Title == "" {
		return errs.Usagef("missing required argument TITLE_SUBSTRING")
	}
	return nil
}

// OpenRequest opens URL with the default handler. The URL is not parsed.
type OpenRequest struct {
	URL string `mapstructure:"url"`
}

func (r OpenRequest) Validate() error {
	if r.URL == "" {
		return errs.Usagef("missing required argument URL")
	}
	return nil
}
