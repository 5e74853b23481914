// Package config loads and persists the clock's settings. Precedence is
// compiled defaults, then the JSON settings file, then environment
// variables (BINCLOCK_* keys).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/vancha/binary-clock/internal/render"
)

const envPrefix = "BINCLOCK_"

const (
	DefaultWindowWidth  = 360
	DefaultWindowHeight = 240

	// UTC offset applied when sampling the time, in seconds. UTC+1 matches
	// the zone the clock was originally built for.
	DefaultUTCOffsetSeconds = 3600
)

// Config holds every user-tunable setting.
type Config struct {
	WindowWidth  int `koanf:"window_width" json:"window_width"`
	WindowHeight int `koanf:"window_height" json:"window_height"`

	UTCOffsetSeconds int `koanf:"utc_offset_seconds" json:"utc_offset_seconds"`

	// Mode is "bcd" (six digit columns) or "binary" (three value columns).
	Mode string `koanf:"mode" json:"mode"`

	// Circle colors as #RRGGBB hex strings.
	ActiveColor   string `koanf:"active_color" json:"active_color"`
	InactiveColor string `koanf:"inactive_color" json:"inactive_color"`

	// Chime enables the short tone played on the hour.
	Chime bool `koanf:"chime" json:"chime"`

	LogLevel  string `koanf:"log_level" json:"log_level"`
	LogFormat string `koanf:"log_format" json:"log_format"`
}

func defaults() *Config {
	return &Config{
		WindowWidth:      DefaultWindowWidth,
		WindowHeight:     DefaultWindowHeight,
		UTCOffsetSeconds: DefaultUTCOffsetSeconds,
		Mode:             "bcd",
		ActiveColor:      "#FFFFFF",
		InactiveColor:    "#202020",
		Chime:            false,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Path returns the settings file location under the XDG config directory,
// creating parent directories as needed.
func Path() (string, error) {
	return xdg.ConfigFile(filepath.Join("binary-clock", "config.json"))
}

// Load reads settings from path (if it exists) on top of compiled defaults,
// then applies BINCLOCK_* environment variables on top of both.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: defaults stand until the first save.
	case err != nil:
		return nil, fmt.Errorf("read settings file: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse settings file %s: %w", path, err)
		}
	}

	k := koanf.New(".")
	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the settings file. The file is the durable half of the
// settings round-trip: whatever was last saved comes back on the next Load.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Validate rejects settings the clock cannot start with.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.WindowWidth, c.WindowHeight)
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := ParseHexColor(c.ActiveColor); err != nil {
		return fmt.Errorf("active_color: %w", err)
	}
	if _, err := ParseHexColor(c.InactiveColor); err != nil {
		return fmt.Errorf("inactive_color: %w", err)
	}
	return nil
}

// Colors parses the configured circle colors.
func (c *Config) Colors() (active, inactive color.RGBA, err error) {
	if active, err = ParseHexColor(c.ActiveColor); err != nil {
		return
	}
	inactive, err = ParseHexColor(c.InactiveColor)
	return
}

// ParseHexColor parses a #RRGGBB string into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// FormatHexColor renders a color as the #RRGGBB form ParseHexColor accepts.
// The alpha channel is dropped; circles are always drawn opaque.
func FormatHexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
