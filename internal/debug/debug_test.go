package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	if !Enabled() {
		t.Fatal("Enabled() = false after Init, want true")
	}
	Log("session %s committed", "abc")
	Logger().Debug("structured", "id", "abc")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"session abc committed"`) {
		t.Errorf("log = %q, want formatted message", out)
	}
	if !strings.Contains(out, `"id":"abc"`) {
		t.Errorf("log = %q, want structured attribute", out)
	}
}

func TestInit_EmptyPathDisables(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init(\"\") error = %v", err)
	}
	if Enabled() {
		t.Error("Enabled() = true with empty path, want false")
	}
	// Must not panic when disabled.
	Logf("ignored %d", 1)
}
