package term

// Capabilities describes what the terminal supports.
type Capabilities struct {
	TrueColor bool
}

// MouseMode selects which mouse events the terminal reports.
type MouseMode int

const (
	MouseOff MouseMode = iota
	// MouseButtons reports presses, releases and motion while a button is
	// held (mode 1002).
	MouseButtons
	// MouseAllMotion also reports motion with no button held (mode 1003).
	MouseAllMotion
)

// String returns the mode name.
func (m MouseMode) String() string {
	switch m {
	case MouseOff:
		return "off"
	case MouseButtons:
		return "buttons"
	case MouseAllMotion:
		return "all-motion"
	default:
		return "unknown"
	}
}

// Terminal abstracts the output side of a terminal.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)
	// Flush writes cell changes, expected in row-major order.
	Flush(changes []CellChange)
	// Clear clears the screen.
	Clear()
	HideCursor()
	ShowCursor()
	EnterRawMode() error
	ExitRawMode() error
	EnterAltScreen()
	ExitAltScreen()
	// SetMouseMode switches mouse reporting. All modes use SGR encoding.
	SetMouseMode(mode MouseMode)
	// SetFocusReporting toggles focus in/out reports (mode 1004).
	SetFocusReporting(on bool)
	Caps() Capabilities
}
