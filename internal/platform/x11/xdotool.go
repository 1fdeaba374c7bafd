package x11

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/model"
	"github.com/mj1618/desktopctl/internal/platform"
)

// Inputter implements platform.Inputter with xdotool.
type Inputter struct {
	r       *runner
	xdotool string
}

// NewInputter returns an Inputter running the given xdotool binary.
func NewInputter(r *runner, xdotool string) *Inputter {
	return &Inputter{r: r, xdotool: xdotool}
}

// Click moves and clicks in a single xdotool invocation. "--" ends option
// parsing so negative coordinates are not read as flags.
func (i *Inputter) Click(ctx context.Context, x, y int, button platform.MouseButton) error {
	_, err := i.r.run(ctx, i.xdotool,
		"mousemove", "--", strconv.Itoa(x), strconv.Itoa(y),
		"click", strconv.Itoa(int(button)),
	)
	return err
}

// TypeText passes text through untouched; "--" keeps a leading dash from
// being read as an option.
func (i *Inputter) TypeText(ctx context.Context, text string, delayMs int) error {
	_, err := i.r.run(ctx, i.xdotool, "type", "--delay", strconv.Itoa(delayMs), "--", text)
	return err
}

func (i *Inputter) KeyCombo(ctx context.Context, keys string) error {
	_, err := i.r.run(ctx, i.xdotool, "key", "--", keys)
	return err
}

func (i *Inputter) MouseLocation(ctx context.Context) (model.Point, error) {
	res, err := i.r.run(ctx, i.xdotool, "getmouselocation", "--shell")
	if err != nil {
		return model.Point{}, err
	}
	return parseMouseLocation(res.Stdout)
}

// WindowManager implements platform.WindowManager with xdotool.
type WindowManager struct {
	r       *runner
	xdotool string
}

// NewWindowManager returns a WindowManager running the given xdotool binary.
func NewWindowManager(r *runner, xdotool string) *WindowManager {
	return &WindowManager{r: r, xdotool: xdotool}
}

// ListWindows searches visible windows, then asks for each title. A window
// that disappears between the two steps is dropped.
func (w *WindowManager) ListWindows(ctx context.Context) ([]model.Window, error) {
	res, err := w.r.run(ctx, w.xdotool, "search", "--onlyvisible", "--name", ".*")
	if err != nil {
		// search exits 1 without output when nothing matches.
		var toolErr *errs.ExternalToolError
		if errors.As(err, &toolErr) && toolErr.ExitCode == 1 &&
			strings.TrimSpace(res.Stdout) == "" && strings.TrimSpace(toolErr.Stderr) == "" {
			return []model.Window{}, nil
		}
		return nil, err
	}

	ids := strings.Fields(res.Stdout)
	windows := make([]model.Window, 0, len(ids))
	for _, id := range ids {
		name, err := w.r.run(ctx, w.xdotool, "getwindowname", id)
		if err != nil {
			var toolErr *errs.ExternalToolError
			if errors.As(err, &toolErr) {
				continue
			}
			return nil, err
		}
		windows = append(windows, model.Window{
			ID:    id,
			Title: strings.TrimRight(name.Stdout, "\r\n"),
		})
	}
	return windows, nil
}

func (w *WindowManager) ActivateWindow(ctx context.Context, id string) error {
	_, err := w.r.run(ctx, w.xdotool, "windowactivate", id)
	return err
}

// parseMouseLocation parses `xdotool getmouselocation --shell` output:
//
//	X=812
//	Y=403
//	SCREEN=0
//	WINDOW=65011718
func parseMouseLocation(out string) (model.Point, error) {
	var p model.Point
	var haveX, haveY bool
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "X", "Y", "SCREEN":
			n, err := strconv.Atoi(value)
			if err != nil {
				return model.Point{}, fmt.Errorf("parse mouse location %s=%q: %w", key, value, err)
			}
			switch key {
			case "X":
				p.X, haveX = n, true
			case "Y":
				p.Y, haveY = n, true
			default:
				p.Screen = n
			}
		case "WINDOW":
			p.Window = value
		}
	}
	if !haveX || !haveY {
		return model.Point{}, fmt.Errorf("parse mouse location: missing X or Y in %q", out)
	}
	return p, nil
}
