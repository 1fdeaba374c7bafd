package action

import (
	"fmt"
	"strings"

	"github.com/mj1618/desktopctl/internal/model"
)

// ScreenshotResult is the output of a successful screenshot.
type ScreenshotResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Path   string `yaml:"path"   json:"path"`
}

func (r ScreenshotResult) Text() string { return r.Path }

// ClickResult is the output of a successful click.
type ClickResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
	Button int    `yaml:"button" json:"button"`
}

func (r ClickResult) Text() string {
	return fmt.Sprintf("clicked button %d at %d,%d", r.Button, r.X, r.Y)
}

// TypeResult is the output of a successful type.
type TypeResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Typed  string `yaml:"text"   json:"text"`
}

func (r TypeResult) Text() string {
	return fmt.Sprintf("typed %d characters", len([]rune(r.Typed)))
}

// KeyResult is the output of a successful key.
type KeyResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Keys   string `yaml:"keys"   json:"keys"`
}

func (r KeyResult) Text() string { return "sent key " + r.Keys }

// WhereResult is the output of a successful where.
type WhereResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	X      int    `yaml:"x"                json:"x"`
	Y      int    `yaml:"y"                json:"y"`
	Screen int    `yaml:"screen"           json:"screen"`
	Window string `yaml:"window,omitempty" json:"window,omitempty"`
}

func (r WhereResult) Text() string { return fmt.Sprintf("%d %d", r.X, r.Y) }

// WindowsResult is the output of a successful windows listing.
type WindowsResult struct {
	OK      bool           `yaml:"ok"      json:"ok"`
	Action  string         `yaml:"action"  json:"action"`
	Windows []model.Window `yaml:"windows" json:"windows"`
}

func (r WindowsResult) Text() string {
	var b strings.Builder
	for i, w := range r.Windows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(w.ID)
		b.WriteByte('\t')
		b.WriteString(w.Title)
	}
	return b.String()
}

// ActivateResult is the output of a successful activate.
type ActivateResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	ID     string `yaml:"id"     json:"id"`
	Title  string `yaml:"title"  json:"title"`
}

func (r ActivateResult) Text() string { return r.Title }

// OpenResult is the output of a successful open.
type OpenResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	URL    string `yaml:"url"    json:"url"`
	Opener string `yaml:"opener" json:"opener"`
}

func (r OpenResult) Text() string { return "opened " + r.URL }
