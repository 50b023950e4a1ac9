package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
)

func TestParse(t *testing.T) {
	type tc struct {
		input   string
		check   func(t *testing.T, c Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty uses defaults": {
			input: "",
			check: func(t *testing.T, c Config) {
				if c.FrameRate != 60 || c.Theme != "dark-pro" || c.InputLatency != 20*time.Millisecond {
					t.Errorf("defaults = %+v", c)
				}
			},
		},
		"overrides": {
			input: "frame_rate: 120\ninput_latency: 5ms\nsnap_grid: 2\ntheme: neon-cyber\ncanvas: {width: 80, height: 20}\n",
			check: func(t *testing.T, c Config) {
				if c.FrameRate != 120 || c.InputLatency != 5*time.Millisecond || c.SnapGrid != 2 {
					t.Errorf("got %+v", c)
				}
				if c.Canvas.Width != 80 || c.Canvas.Height != 20 {
					t.Errorf("canvas = %+v", c.Canvas)
				}
				if len(c.Sizes) != 3 {
					t.Errorf("default sizes lost: %v", c.Sizes)
				}
			},
		},
		"size override": {
			input: "sizes:\n  button: {width: 20, height: 5}\n",
			check: func(t *testing.T, c Config) {
				got := c.KindSizes()[canvas.KindButton]
				if got.Width != 20 || got.Height != 5 {
					t.Errorf("button size = %+v", got)
				}
				if c.KindSizes()[canvas.KindCard].Width != 30 {
					t.Errorf("card size lost: %+v", c.Sizes)
				}
			},
		},
		"frame rate out of range": {input: "frame_rate: 0\n", wantErr: "frame_rate"},
		"negative snap":           {input: "snap_grid: -1\n", wantErr: "snap_grid"},
		"zero latency":            {input: "input_latency: 0s\n", wantErr: "input_latency"},
		"unknown kind":            {input: "sizes:\n  slider: {width: 1, height: 1}\n", wantErr: "unknown component kind"},
		"empty size":              {input: "sizes:\n  card: {width: 0, height: 3}\n", wantErr: "sizes.card"},
		"bad package":             {input: "export: {package: 9lives, tui_import: github.com/grindlemire/go-tui}\n", wantErr: "export.package"},
		"bad import path":         {input: "export: {package: design, tui_import: \"not a path\"}\n", wantErr: "export.tui_import"},
		"unknown key":             {input: "colour: red\n", wantErr: "colour"},
		"two documents":           {input: "theme: a\n---\ntheme: b\n", wantErr: "single document"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.FrameRate != Default().FrameRate {
		t.Errorf("Load() = %+v, want defaults", c)
	}
}

func TestWatch_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "designer.yaml")
	if err := os.WriteFile(path, []byte("theme: dark-pro\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Config, 4)
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, func(c Config) { got <- c }) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("theme: ocean-blue\nsnap_grid: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-got:
		if c.Theme != "ocean-blue" || c.SnapGrid != 4 {
			t.Errorf("reloaded config = %+v", c)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
