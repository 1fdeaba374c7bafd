package platform

import (
	"context"

	"github.com/mj1618/desktopctl/internal/model"
)

// Inputter synthesizes pointer and keyboard input.
type Inputter interface {
	// Click moves the pointer to (x, y) and clicks button there.
	Click(ctx context.Context, x, y int, button MouseButton) error
	// TypeText types text literally, waiting delayMs between keystrokes.
	TypeText(ctx context.Context, text string, delayMs int) error
	// KeyCombo sends a key or chord such as "ctrl+l" or "Return".
	KeyCombo(ctx context.Context, keys string) error
	// MouseLocation returns the current pointer position.
	MouseLocation(ctx context.Context) (model.Point, error)
}

// WindowManager enumerates and activates windows.
type WindowManager interface {
	// ListWindows returns visible windows in the order the utility reports them.
	ListWindows(ctx context.Context) ([]model.Window, error)
	// ActivateWindow raises and focuses the window with the given ID.
	ActivateWindow(ctx context.Context, id string) error
}

// Screenshotter captures the screen.
type Screenshotter interface {
	// Capture writes a screenshot image to path.
	Capture(ctx context.Context, path string) error
}

// URLOpener hands a URL to the session's default handler.
type URLOpener interface {
	// OpenURL opens url and returns the opener program that handled it.
	OpenURL(ctx context.Context, url string) (string, error)
}
