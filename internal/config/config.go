// Package config loads the optional desktopctl configuration file.
//
// The file never supplies DISPLAY or XAUTHORITY; those come from flags or the
// inherited environment only.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds program locations and action defaults.
type Config struct {
	Xdotool       string     `yaml:"xdotool"`
	Scrot         string     `yaml:"scrot"`
	Openers       [][]string `yaml:"openers"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
	TypeDelayMs   int        `yaml:"type_delay_ms"`
	Format        string     `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Xdotool: "xdotool",
		Scrot:   "scrot",
		Openers: [][]string{
			{"xdg-open"},
			{"gio", "open"},
			{"chromium-browser"},
		},
		ScreenshotDir: "tmp",
		TypeDelayMs:   12,
		Format:        "text",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/desktopctl/config.yaml, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "desktopctl", "config.yaml")
}

// Load reads path over the defaults. When explicit is false a missing file is
// not an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Xdotool == "" {
		return errors.New("xdotool must not be empty")
	}
	if c.Scrot == "" {
		return errors.New("scrot must not be empty")
	}
	if len(c.Openers) == 0 {
		return errors.New("openers must list at least one program")
	}
	for i, o := range c.Openers {
		if len(o) == 0 || o[0] == "" {
			return fmt.Errorf("openers[%d] is empty", i)
		}
	}
	if c.TypeDelayMs < 0 {
		return fmt.Errorf("type_delay_ms must be >= 0, got %d", c.TypeDelayMs)
	}
	switch c.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unsupported format: %s (use text, yaml, or json)", c.Format)
	}
	return nil
}
