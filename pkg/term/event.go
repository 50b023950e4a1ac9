package term

// Event is an input event delivered to a Handler.
type Event interface {
	isEvent()
}

// Key identifies a non-printable key, or KeyRune for printable input.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlZ
)

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// MouseButton identifies the button of a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is what the button did.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	// MouseDrag is motion with a button held.
	MouseDrag
	// MouseMotion is motion with no button held. Only reported in
	// MouseAllMotion mode.
	MouseMotion
)

// MouseEvent is a mouse event in 0-indexed cell coordinates.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   int
	Mod    Modifier
}

// FocusEvent reports the terminal window gaining or losing focus.
type FocusEvent struct {
	Focused bool
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (FocusEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
