package term

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Handler receives input and draws the screen. Both methods run on the
// main loop goroutine.
type Handler interface {
	HandleEvent(ev Event)
	Draw(s *Screen)
}

// App owns the terminal, the input reader and the main loop.
type App struct {
	term    Terminal
	reader  EventReader
	screen  *Screen
	handler Handler

	frameDuration  time.Duration
	inputLatency   time.Duration
	eventQueueSize int
	eventQueue     chan func()

	mouse          MouseMode
	focusReporting bool
	altScreen      bool

	dirty      atomic.Bool
	fullRedraw bool

	frameMu  sync.Mutex
	frameFns []func()
	frames   atomic.Uint64

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewApp creates an App on the process's terminal.
func NewApp(h Handler, opts ...AppOption) (*App, error) {
	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("event reader: %w", err)
	}
	return NewAppWith(NewANSITerminal(os.Stdout, os.Stdin), reader, h, opts...)
}

// NewAppWith creates an App on the given terminal and reader.
func NewAppWith(t Terminal, r EventReader, h Handler, opts ...AppOption) (*App, error) {
	if t == nil || r == nil {
		return nil, fmt.Errorf("term: nil terminal or reader")
	}
	if h == nil {
		return nil, fmt.Errorf("term: nil handler")
	}
	a := &App{
		term:           t,
		reader:         r,
		handler:        h,
		frameDuration:  time.Second / 60,
		inputLatency:   50 * time.Millisecond,
		eventQueueSize: 256,
		mouse:          MouseButtons,
		focusReporting: true,
		altScreen:      true,
		stopCh:         make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.eventQueue = make(chan func(), a.eventQueueSize)
	w, h2 := t.Size()
	a.screen = NewScreen(w, h2)
	a.dirty.Store(true)
	return a, nil
}

// Terminal returns the terminal the app draws on.
func (a *App) Terminal() Terminal {
	return a.term
}

// Screen returns the screen buffer.
func (a *App) Screen() *Screen {
	return a.screen
}

// FrameDuration returns the target time between frames.
func (a *App) FrameDuration() time.Duration {
	return a.frameDuration
}

// Frames returns the number of frames run so far.
func (a *App) Frames() uint64 {
	return a.frames.Load()
}

// MarkDirty schedules a redraw on the next frame. Safe from any goroutine.
func (a *App) MarkDirty() {
	a.dirty.Store(true)
}

// SetMouseMode switches mouse reporting. Call from the main loop.
func (a *App) SetMouseMode(mode MouseMode) {
	a.mouse = mode
	a.term.SetMouseMode(mode)
}

// MouseMode returns the current mouse reporting mode.
func (a *App) MouseMode() MouseMode {
	return a.mouse
}

// RequestFrame runs fn at the start of the next frame, before drawing.
// Callbacks requested while a frame runs wait for the following frame.
// Safe from any goroutine.
func (a *App) RequestFrame(fn func()) {
	a.frameMu.Lock()
	a.frameFns = append(a.frameFns, fn)
	a.frameMu.Unlock()
}

// Dispatch delivers ev to the handler. Resize events resize the screen
// first and force a full redraw.
func (a *App) Dispatch(ev Event) {
	if r, ok := ev.(ResizeEvent); ok {
		a.screen.Resize(r.Width, r.Height)
		a.fullRedraw = true
		a.MarkDirty()
	}
	a.handler.HandleEvent(ev)
}

// RunFrame runs one frame: pending frame callbacks, then a redraw if
// anything changed. It returns the number of callbacks run.
func (a *App) RunFrame() int {
	a.frames.Add(1)

	a.frameMu.Lock()
	fns := a.frameFns
	a.frameFns = nil
	a.frameMu.Unlock()
	for _, fn := range fns {
		fn()
	}

	if len(fns) > 0 || a.dirty.Swap(false) {
		a.render()
	}
	return len(fns)
}

// render redraws the whole screen and writes the cells that changed.
func (a *App) render() {
	a.dirty.Store(false)
	a.screen.ResetClip()
	a.screen.Clear()
	a.handler.Draw(a.screen)
	if a.fullRedraw {
		a.fullRedraw = false
		a.term.Clear()
		w, h := a.screen.Size()
		fresh := NewScreen(w, h)
		fresh.front, a.screen.front = a.screen.front, fresh.front
	}
	a.term.Flush(a.screen.Diff())
	a.screen.Swap()
}

// setup prepares the terminal for full screen interactive use and reports
// the starting size to the handler.
func (a *App) setup() error {
	if err := a.term.EnterRawMode(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	if a.altScreen {
		a.term.EnterAltScreen()
	}
	a.term.HideCursor()
	a.term.SetMouseMode(a.mouse)
	if a.focusReporting {
		a.term.SetFocusReporting(true)
	}
	w, h := a.term.Size()
	a.screen.Resize(w, h)
	a.term.Clear()
	a.handler.HandleEvent(ResizeEvent{Width: w, Height: h})
	return nil
}

// restore undoes setup. Errors are returned after every step has run.
func (a *App) restore() error {
	if a.focusReporting {
		a.term.SetFocusReporting(false)
	}
	a.term.SetMouseMode(MouseOff)
	a.term.ShowCursor()
	if a.altScreen {
		a.term.ExitAltScreen()
	}
	rawErr := a.term.ExitRawMode()
	readErr := a.reader.Close()
	if rawErr != nil {
		return fmt.Errorf("exit raw mode: %w", rawErr)
	}
	return readErr
}
