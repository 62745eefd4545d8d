// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/user/img2gif/pkg/orchestrator"
	"github.com/user/img2gif/pkg/ports"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the full configuration for img2gif.
type Config struct {
	// Input/Output
	SourceDir  string `yaml:"source"`
	OutputPath string `yaml:"output"`

	// Timing
	FPS int `yaml:"fps"`

	// Resize
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Filter string `yaml:"filter"`

	// Style
	Background string `yaml:"background"`
	Palette    string `yaml:"palette"`
	Dither     bool   `yaml:"dither"`

	// Debug
	DebugDir string `yaml:"debug_dir"`
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputPath: "output.gif",
		FPS:        10,
		Filter:     string(ports.FilterLanczos),
		Palette:    ports.PaletteAdaptive,
		Dither:     true,
		LogLevel:   "info",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges. Width and height may be set independently;
// the loader skips resizing unless both are present.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	if !validFilter(c.Filter) {
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidConfig, c.Filter)
	}
	switch c.Palette {
	case "", ports.PaletteAdaptive, ports.PalettePlan9, ports.PaletteWebSafe:
	default:
		return fmt.Errorf("%w: unknown palette %q", ErrInvalidConfig, c.Palette)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if _, err := ports.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validFilter(name string) bool {
	if name == "" {
		return true
	}
	for _, f := range ports.ResampleFilters {
		if string(f) == name {
			return true
		}
	}
	return false
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the '#' is optional).
// An empty string yields a nil color, meaning no background.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if hex == "" {
		return nil, nil
	}

	var digits []uint8
	for i := 0; i < len(hex); i++ {
		v, ok := hexValue(hex[i])
		if !ok {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		digits = append(digits, v)
	}

	switch len(digits) {
	case 3:
		return color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}, nil
	case 6:
		return color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}, nil
	case 8:
		return color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: digits[6]<<4 | digits[7],
		}, nil
	default:
		return nil, fmt.Errorf("invalid color %q", s)
	}
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Call Validate first; an unparsable background is dropped here.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	bg, _ := ParseColor(c.Background)

	return orchestrator.Config{
		SourceDir:  c.SourceDir,
		OutputPath: c.OutputPath,

		FPS: c.FPS,

		Width:  c.Width,
		Height: c.Height,
		Filter: ports.ResampleFilter(c.Filter),

		Background: bg,
		Palette:    c.Palette,
		Dither:     c.Dither,
	}
}
