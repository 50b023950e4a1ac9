package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
	"github.com/grindlemire/go-tui-designer/pkg/term"
)

func TestBuildRootCmdIncludesSubcommands(t *testing.T) {
	cmd := buildRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"run", "export", "version"} {
		if !names[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := buildRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !strings.HasPrefix(out.String(), "designer dev") {
		t.Errorf("version output = %q", out.String())
	}
}

// withMockTerminal makes runDesigner use a 100x30 mock terminal fed with
// events.
func withMockTerminal(t *testing.T, events ...term.Event) *term.MockTerminal {
	t.Helper()
	mock := term.NewMockTerminal(100, 30)
	prev := newApp
	newApp = func(h term.Handler, opts ...term.AppOption) (*term.App, error) {
		return term.NewAppWith(mock, term.NewMockEventReader(events...), h, opts...)
	}
	t.Cleanup(func() { newApp = prev })
	return mock
}

func TestRunDesigner_DragAndSave(t *testing.T) {
	mock := withMockTerminal(t,
		term.KeyEvent{Key: term.KeyRune, Rune: '1'},
		term.MouseEvent{Button: term.MouseLeft, Action: term.MousePress, X: 25, Y: 4},
		term.MouseEvent{Button: term.MouseLeft, Action: term.MouseDrag, X: 30, Y: 6},
		term.MouseEvent{Button: term.MouseLeft, Action: term.MouseDrag, X: 35, Y: 10},
		term.MouseEvent{Button: term.MouseNone, Action: term.MouseRelease, X: 35, Y: 10},
		term.KeyEvent{Key: term.KeyRune, Rune: 'q'},
	)

	dir := t.TempDir()
	layout := filepath.Join(dir, "layout.yaml")
	opts := runOptions{
		configPath:  filepath.Join(dir, "designer.yaml"),
		layoutPath:  layout,
		metricsAddr: "127.0.0.1:0",
	}

	done := make(chan error, 1)
	go func() { done <- runDesigner(context.Background(), opts) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runDesigner() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runDesigner did not return after q")
	}

	doc := canvas.NewDocument()
	if err := doc.LoadLayout(layout); err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	comps := doc.Components()
	if len(comps) != 1 {
		t.Fatalf("saved %d components, want 1", len(comps))
	}
	if comps[0].Position != (drag.Point{X: 12, Y: 7}) {
		t.Errorf("saved position = %+v, want {12 7}", comps[0].Position)
	}
	if mock.InRawMode() {
		t.Error("terminal left in raw mode")
	}
}

func TestRunDesigner_BadConfig(t *testing.T) {
	withMockTerminal(t)
	path := filepath.Join(t.TempDir(), "designer.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runDesigner(context.Background(), runOptions{configPath: path}); err == nil {
		t.Error("runDesigner() expected config error")
	}
	if err := runDesigner(context.Background(), runOptions{theme: "neon"}); err == nil {
		t.Error("runDesigner() expected theme error")
	}
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "home.yaml")
	src := canvas.NewDocument()
	btn, _ := src.Add(canvas.KindButton)
	if err := src.SetPosition(btn.ID, drag.Point{X: 4, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := src.SaveLayout(layout); err != nil {
		t.Fatalf("SaveLayout: %v", err)
	}

	type tc struct {
		opts     exportOptions
		contains []string
		wantErr  bool
	}

	tests := map[string]tc{
		"go defaults": {
			opts:     exportOptions{format: "go", funcName: "Design"},
			contains: []string{"package design", "func Design() *tui.Element", `tui.WithText("Button Text")`, "// Source: home.yaml"},
		},
		"go custom package": {
			opts:     exportOptions{format: "go", pkg: "ui", funcName: "Home"},
			contains: []string{"package ui", "func Home() *tui.Element"},
		},
		"yaml": {
			opts:     exportOptions{format: "yaml", funcName: "Design"},
			contains: []string{"components:", "kind: button", "x: 4", "children: Button Text"},
		},
		"bad format":    {opts: exportOptions{format: "json", funcName: "Design"}, wantErr: true},
		"bad func name": {opts: exportOptions{format: "go", funcName: "home"}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := runExport(&out, layout, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("runExport() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunExport_ToFile(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "home.yaml")
	src := canvas.NewDocument()
	if _, err := src.Add(canvas.KindCard); err != nil {
		t.Fatal(err)
	}
	if err := src.SaveLayout(layout); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "ui", "home_gen.go")
	if err := runExport(&bytes.Buffer{}, layout, exportOptions{format: "go", funcName: "Home", output: out}); err != nil {
		t.Fatalf("runExport() = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Card Title") {
		t.Errorf("generated file missing card title:\n%s", data)
	}
}

func TestRunExport_MissingLayout(t *testing.T) {
	err := runExport(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.yaml"), exportOptions{format: "go", funcName: "Design"})
	if err == nil {
		t.Error("runExport() expected error for missing layout")
	}
}
