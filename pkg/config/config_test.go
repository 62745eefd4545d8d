package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/img2gif/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.OutputPath != "output.gif" {
		t.Errorf("OutputPath = %q, want output.gif", cfg.OutputPath)
	}
	if cfg.FPS != 10 {
		t.Errorf("FPS = %d, want 10", cfg.FPS)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("default resize should be unset, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Filter != string(ports.FilterLanczos) {
		t.Errorf("Filter = %q, want lanczos", cfg.Filter)
	}
	if cfg.Palette != ports.PaletteAdaptive {
		t.Errorf("Palette = %q, want adaptive", cfg.Palette)
	}
	if !cfg.Dither {
		t.Error("Dither should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img2gif.yaml")
	content := `source: ./frames
fps: 5
width: 50
height: 50
palette: websafe
background: "#ffffff"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.SourceDir != "./frames" || cfg.FPS != 5 || cfg.Width != 50 || cfg.Height != 50 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Palette != ports.PaletteWebSafe {
		t.Errorf("Palette = %q, want websafe", cfg.Palette)
	}
	// Keys absent from the file keep defaults
	if cfg.OutputPath != "output.gif" {
		t.Errorf("OutputPath = %q, want default", cfg.OutputPath)
	}
	if !cfg.Dither {
		t.Error("Dither should keep its default")
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"width only", func(c *Config) { c.Width = 50 }, true},
		{"both sides", func(c *Config) { c.Width, c.Height = 50, 40 }, true},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"negative fps", func(c *Config) { c.FPS = -3 }, false},
		{"negative width", func(c *Config) { c.Width = -1 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"empty output", func(c *Config) { c.OutputPath = "" }, false},
		{"unknown filter", func(c *Config) { c.Filter = "bicubic" }, false},
		{"nearest filter", func(c *Config) { c.Filter = "nearest" }, true},
		{"unknown palette", func(c *Config) { c.Palette = "grayscale" }, false},
		{"adaptive palette", func(c *Config) { c.Palette = "adaptive" }, true},
		{"plan9 palette", func(c *Config) { c.Palette = "plan9" }, true},
		{"bad background", func(c *Config) { c.Background = "#12" }, false},
		{"good background", func(c *Config) { c.Background = "#1a1a2e" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Error("expected error")
				} else if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error should wrap ErrInvalidConfig: %v", err)
				}
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.Color
		ok    bool
	}{
		{"", nil, true},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, true},
		{"1a1a2e", color.NRGBA{0x1a, 0x1a, 0x2e, 255}, true},
		{"#F00", color.NRGBA{255, 0, 0, 255}, true},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}, true},
		{"#12", nil, false},
		{"#gggggg", nil, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.input, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error", tt.input)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.SourceDir = "in"
	cfg.OutputPath = "out.gif"
	cfg.FPS = 5
	cfg.Width = 50
	cfg.Height = 50
	cfg.Filter = "box"
	cfg.Background = "#000"
	cfg.Dither = false

	oc := cfg.ToOrchestratorConfig()

	if oc.SourceDir != "in" || oc.OutputPath != "out.gif" {
		t.Errorf("paths not carried over: %+v", oc)
	}
	if oc.DelayMs() != 200 {
		t.Errorf("DelayMs = %d, want 200", oc.DelayMs())
	}
	if oc.Width != 50 || oc.Height != 50 {
		t.Errorf("resize = %dx%d", oc.Width, oc.Height)
	}
	if oc.Filter != ports.FilterBox {
		t.Errorf("Filter = %q", oc.Filter)
	}
	if oc.Background != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("Background = %v", oc.Background)
	}
	if oc.Dither {
		t.Error("Dither should be false")
	}

	if Defaults().ToOrchestratorConfig().Background != nil {
		t.Error("empty background should map to nil")
	}
}
