package term

import (
	"strings"
	"sync"
	"time"
)

// MockTerminal is a Terminal for tests. It keeps the flushed cells and
// records mode switches.
type MockTerminal struct {
	mu            sync.Mutex
	width, height int
	cells         []Cell
	flushes       int
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	focusReports  bool
	mouse         MouseMode
	mouseHistory  []MouseMode
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a blank mock terminal.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{width: width, height: height}
	m.cells = make([]Cell, width*height)
	m.Clear()
	return m
}

func (m *MockTerminal) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Resize changes the size reported by Size.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	for i := range m.cells {
		m.cells[i] = blank
	}
}

func (m *MockTerminal) Flush(changes []CellChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

func (m *MockTerminal) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cells {
		m.cells[i] = blank
	}
}

func (m *MockTerminal) HideCursor() { m.set(&m.cursorHidden, true) }
func (m *MockTerminal) ShowCursor() { m.set(&m.cursorHidden, false) }

func (m *MockTerminal) EnterRawMode() error {
	m.set(&m.inRawMode, true)
	return nil
}

func (m *MockTerminal) ExitRawMode() error {
	m.set(&m.inRawMode, false)
	return nil
}

func (m *MockTerminal) EnterAltScreen()           { m.set(&m.inAltScreen, true) }
func (m *MockTerminal) ExitAltScreen()            { m.set(&m.inAltScreen, false) }
func (m *MockTerminal) SetFocusReporting(on bool) { m.set(&m.focusReports, on) }

func (m *MockTerminal) SetMouseMode(mode MouseMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = mode
	m.mouseHistory = append(m.mouseHistory, mode)
}

func (m *MockTerminal) Caps() Capabilities { return Capabilities{TrueColor: true} }

func (m *MockTerminal) set(field *bool, v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*field = v
}

// MouseMode returns the current mouse mode.
func (m *MockTerminal) MouseMode() MouseMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouse
}

// MouseHistory returns every mode passed to SetMouseMode, in order.
func (m *MockTerminal) MouseHistory() []MouseMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MouseMode(nil), m.mouseHistory...)
}

// InRawMode reports whether raw mode is on.
func (m *MockTerminal) InRawMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inRawMode
}

// InAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) InAltScreen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inAltScreen
}

// FocusReporting reports whether focus reporting is on.
func (m *MockTerminal) FocusReporting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focusReports
}

// Flushes returns how many times Flush was called.
func (m *MockTerminal) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// CellAt returns the cell at (x, y).
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String returns the terminal contents, one line per row, trailing spaces
// trimmed.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var sb strings.Builder
		for x := 0; x < m.width; x++ {
			sb.WriteRune(m.cells[y*m.width+x].Rune)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// MockEventReader is an EventReader for tests that returns queued events in
// order. It is safe to add events while an App is reading.
type MockEventReader struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a reader that yields events in order.
func NewMockEventReader(events ...Event) *MockEventReader {
	return &MockEventReader{events: events}
}

// PollEvent returns the next queued event. With nothing queued it waits
// for the timeout (capped at 5ms) so polling loops do not spin.
func (m *MockEventReader) PollEvent(timeout time.Duration) (Event, bool) {
	m.mu.Lock()
	if len(m.events) > 0 {
		ev := m.events[0]
		m.events = m.events[1:]
		m.mu.Unlock()
		return ev, true
	}
	m.mu.Unlock()
	if timeout < 0 || timeout > 5*time.Millisecond {
		timeout = 5 * time.Millisecond
	}
	time.Sleep(timeout)
	return nil, false
}

// AddEvents queues more events.
func (m *MockEventReader) AddEvents(events ...Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
}

// Remaining returns how many events have not been read.
func (m *MockEventReader) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func (m *MockEventReader) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
