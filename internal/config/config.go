// Package config loads the designer's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

// Config is the designer configuration.
type Config struct {
	FrameRate    int                   `yaml:"frame_rate"`
	InputLatency time.Duration         `yaml:"input_latency"`
	SnapGrid     float64               `yaml:"snap_grid"`
	Canvas       CanvasConfig          `yaml:"canvas"`
	Theme        string                `yaml:"theme"`
	DebugLog     string                `yaml:"debug_log"`
	MetricsAddr  string                `yaml:"metrics_addr"`
	Sizes        map[string]SizeConfig `yaml:"sizes"`
	Export       ExportConfig          `yaml:"export"`
}

// CanvasConfig fixes the canvas size. Zero fills the available area.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SizeConfig is the rendered size of one component kind.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ExportConfig controls generated Go source.
type ExportConfig struct {
	Package   string `yaml:"package"`
	TUIImport string `yaml:"tui_import"`
}

// Default returns the built-in configuration.
func Default() Config {
	sizes := make(map[string]SizeConfig)
	for kind, s := range canvas.DefaultSizes() {
		sizes[string(kind)] = SizeConfig{Width: int(s.Width), Height: int(s.Height)}
	}
	return Config{
		FrameRate:    60,
		InputLatency: 20 * time.Millisecond,
		Theme:        "dark-pro",
		Sizes:        sizes,
		Export: ExportConfig{
			Package:   "design",
			TUIImport: "github.com/grindlemire/go-tui",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a single YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: expected single document")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("frame_rate must be in 1..240, got %d", c.FrameRate)
	}
	if c.InputLatency <= 0 {
		return fmt.Errorf("input_latency must be positive, got %s", c.InputLatency)
	}
	if c.SnapGrid < 0 || math.IsNaN(c.SnapGrid) || math.IsInf(c.SnapGrid, 0) {
		return fmt.Errorf("snap_grid must be >= 0, got %v", c.SnapGrid)
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("canvas size must be >= 0, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme is required")
	}
	for name, s := range c.Sizes {
		if _, err := canvas.ParseKind(name); err != nil {
			return fmt.Errorf("sizes: %w", err)
		}
		if s.Width < 1 || s.Height < 1 {
			return fmt.Errorf("sizes.%s must be at least 1x1, got %dx%d", name, s.Width, s.Height)
		}
	}
	if !isIdentifier(c.Export.Package) {
		return fmt.Errorf("export.package %q is not a Go identifier", c.Export.Package)
	}
	if err := module.CheckImportPath(c.Export.TUIImport); err != nil {
		return fmt.Errorf("export.tui_import: %w", err)
	}
	return nil
}

// KindSizes converts Sizes for canvas.WithSizes.
func (c Config) KindSizes() map[canvas.Kind]drag.Size {
	out := make(map[canvas.Kind]drag.Size, len(c.Sizes))
	for name, s := range c.Sizes {
		out[canvas.Kind(name)] = drag.Size{Width: float64(s.Width), Height: float64(s.Height)}
	}
	return out
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
