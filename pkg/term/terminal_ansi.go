package term

import (
	"io"
	"os"
)

// ANSITerminal implements Terminal with ANSI escape sequences.
type ANSITerminal struct {
	out       io.Writer
	inFd      int
	outFd     int
	caps      Capabilities
	esc       *escBuilder
	lastStyle Style
	styled    bool
	mouse     MouseMode
	rawState  *rawModeState
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal writing to out and reading raw mode
// state from in. True color is assumed when COLORTERM says so.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		inFd:  -1,
		outFd: -1,
		esc:   newEscBuilder(4096),
		caps:  detectCapabilities(),
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

func detectCapabilities() Capabilities {
	ct := os.Getenv("COLORTERM")
	return Capabilities{TrueColor: ct == "truecolor" || ct == "24bit"}
}

// Size returns the terminal dimensions, or 80x24 if they cannot be read.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := terminalSize(t.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes changes, skipping cursor moves between adjacent cells and
// style sequences between cells with the same style.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}
	t.esc.Reset()
	lastX, lastY := -2, -2
	for _, ch := range changes {
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if !t.styled || ch.Cell.Style != t.lastStyle {
			t.esc.SetStyle(ch.Cell.Style, t.caps)
			t.lastStyle = ch.Cell.Style
			t.styled = true
		}
		r := ch.Cell.Rune
		if r == 0 {
			r = ' '
		}
		t.esc.WriteRune(r)
		lastX, lastY = ch.X, ch.Y
	}
	t.write()
}

// Clear clears the screen and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
	t.styled = false
	t.write()
}

func (t *ANSITerminal) HideCursor()     { t.private(25, false) }
func (t *ANSITerminal) ShowCursor()     { t.private(25, true) }
func (t *ANSITerminal) EnterAltScreen() { t.private(1049, true) }
func (t *ANSITerminal) ExitAltScreen()  { t.private(1049, false) }

// SetMouseMode switches mouse tracking. Switching between the two tracking
// modes turns the old one off first.
func (t *ANSITerminal) SetMouseMode(mode MouseMode) {
	if mode == t.mouse {
		return
	}
	t.esc.Reset()
	switch t.mouse {
	case MouseButtons:
		t.esc.private(1002, false)
	case MouseAllMotion:
		t.esc.private(1003, false)
	}
	switch mode {
	case MouseOff:
		t.esc.private(1006, false)
	case MouseButtons:
		t.esc.private(1002, true)
		t.esc.private(1006, true)
	case MouseAllMotion:
		t.esc.private(1003, true)
		t.esc.private(1006, true)
	}
	t.mouse = mode
	t.write()
}

// SetFocusReporting toggles focus in/out reports.
func (t *ANSITerminal) SetFocusReporting(on bool) { t.private(1004, on) }

// EnterRawMode puts the input terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.rawState != nil {
		return nil
	}
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

// Caps returns the detected capabilities.
func (t *ANSITerminal) Caps() Capabilities { return t.caps }

func (t *ANSITerminal) private(code int, on bool) {
	t.esc.Reset()
	t.esc.private(code, on)
	t.write()
}

func (t *ANSITerminal) write() {
	// A failed terminal write has nowhere to be reported.
	_, _ = t.out.Write(t.esc.Bytes())
}
