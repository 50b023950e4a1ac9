package term

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingHandler records events and draws a fixed label.
type recordingHandler struct {
	mu     sync.Mutex
	events []Event
	draws  int
	label  string
	onEv   func(ev Event)
}

func (h *recordingHandler) HandleEvent(ev Event) {
	h.mu.Lock()
	h.events = append(h.events, ev)
	fn := h.onEv
	h.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

func (h *recordingHandler) Draw(s *Screen) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draws++
	s.SetString(0, 0, h.label, Style{})
}

func (h *recordingHandler) snapshot() ([]Event, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...), h.draws
}

func newTestApp(t *testing.T, h Handler, opts ...AppOption) (*App, *MockTerminal, *MockEventReader) {
	t.Helper()
	term := NewMockTerminal(20, 5)
	reader := NewMockEventReader()
	app, err := NewAppWith(term, reader, h, opts...)
	if err != nil {
		t.Fatalf("NewAppWith: %v", err)
	}
	return app, term, reader
}

func TestNewAppWith_Options(t *testing.T) {
	type tc struct {
		opts    []AppOption
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":            {},
		"frame rate":          {opts: []AppOption{WithFrameRate(120)}},
		"frame rate too low":  {opts: []AppOption{WithFrameRate(0)}, wantErr: true},
		"frame rate too high": {opts: []AppOption{WithFrameRate(500)}, wantErr: true},
		"zero latency":        {opts: []AppOption{WithInputLatency(0)}, wantErr: true},
		"empty queue":         {opts: []AppOption{WithEventQueueSize(0)}, wantErr: true},
		"bad mouse mode":      {opts: []AppOption{WithMouseMode(MouseMode(9))}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewAppWith(NewMockTerminal(10, 10), NewMockEventReader(), &recordingHandler{}, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAppWith() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApp_RunFrame(t *testing.T) {
	h := &recordingHandler{label: "hello"}
	app, term, _ := newTestApp(t, h)

	// The first frame always draws.
	if n := app.RunFrame(); n != 0 {
		t.Errorf("RunFrame() ran %d callbacks, want 0", n)
	}
	if got := term.String(); got != "hello\n\n\n\n" {
		t.Errorf("terminal = %q", got)
	}

	// Nothing changed: no draw.
	app.RunFrame()
	if _, draws := h.snapshot(); draws != 1 {
		t.Errorf("draws = %d, want 1", draws)
	}

	app.MarkDirty()
	app.RunFrame()
	if _, draws := h.snapshot(); draws != 2 {
		t.Errorf("draws after MarkDirty = %d, want 2", draws)
	}
	if app.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", app.Frames())
	}
}

func TestApp_RequestFrame(t *testing.T) {
	h := &recordingHandler{}
	app, _, _ := newTestApp(t, h)
	app.RunFrame()

	var order []string
	app.RequestFrame(func() {
		order = append(order, "first")
		app.RequestFrame(func() { order = append(order, "nested") })
	})
	app.RequestFrame(func() { order = append(order, "second") })

	if n := app.RunFrame(); n != 2 {
		t.Errorf("RunFrame() ran %d callbacks, want 2", n)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order after first frame = %v", order)
	}
	if _, draws := h.snapshot(); draws != 2 {
		t.Errorf("a frame with callbacks should redraw, draws = %d", draws)
	}

	if n := app.RunFrame(); n != 1 {
		t.Errorf("RunFrame() ran %d callbacks, want 1", n)
	}
	if order[len(order)-1] != "nested" {
		t.Errorf("nested callback not run on the following frame: %v", order)
	}
}

func TestApp_DispatchResize(t *testing.T) {
	h := &recordingHandler{label: "x"}
	app, term, _ := newTestApp(t, h)
	app.RunFrame()

	term.Resize(30, 8)
	app.Dispatch(ResizeEvent{Width: 30, Height: 8})
	if w, ht := app.Screen().Size(); w != 30 || ht != 8 {
		t.Errorf("screen size = %dx%d, want 30x8", w, ht)
	}
	app.RunFrame()
	if got := term.CellAt(0, 0).Rune; got != 'x' {
		t.Errorf("cell after resize = %q, want 'x'", got)
	}
	events, _ := h.snapshot()
	if len(events) != 1 {
		t.Errorf("handler saw %d events, want 1", len(events))
	}
}

func TestApp_Run(t *testing.T) {
	h := &recordingHandler{label: "run"}
	app, term, reader := newTestApp(t, h, WithFrameRate(240), WithInputLatency(time.Millisecond))

	h.onEv = func(ev Event) {
		if k, ok := ev.(KeyEvent); ok && k.Rune == 'q' {
			app.Stop()
		}
	}
	reader.AddEvents(
		MouseEvent{Button: MouseLeft, Action: MousePress, X: 1, Y: 1},
		KeyEvent{Key: KeyRune, Rune: 'q'},
	)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		app.Stop()
		t.Fatal("Run did not stop")
	}

	events, _ := h.snapshot()
	if len(events) != 3 {
		t.Fatalf("handler saw %d events, want 3", len(events))
	}
	if r, ok := events[0].(ResizeEvent); !ok || r.Width != 20 || r.Height != 5 {
		t.Errorf("first event = %#v, want initial ResizeEvent{20, 5}", events[0])
	}
	if term.InRawMode() || term.InAltScreen() || term.FocusReporting() {
		t.Error("terminal not restored")
	}
	history := term.MouseHistory()
	if len(history) != 2 || history[0] != MouseButtons || history[1] != MouseOff {
		t.Errorf("mouse history = %v, want [buttons off]", history)
	}
}

func TestApp_RunContextCancel(t *testing.T) {
	app, _, _ := newTestApp(t, &recordingHandler{}, WithInputLatency(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run ignored context cancellation")
	}
	if app.QueueUpdate(func() {}) {
		t.Error("QueueUpdate accepted work after stop")
	}
}
