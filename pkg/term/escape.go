package term

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset()        { e.buf = e.buf[:0] }
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// private writes ESC [ ? code h|l.
func (e *escBuilder) private(code int, on bool) {
	e.writeCSI()
	e.buf = append(e.buf, '?')
	e.writeInt(code)
	if on {
		e.buf = append(e.buf, 'h')
	} else {
		e.buf = append(e.buf, 'l')
	}
}

// MoveTo moves the cursor. x and y are 0-indexed; the wire is 1-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// SetStyle emits a full SGR sequence for s, starting from a reset.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	e.color(s.Fg, 38, caps)
	e.color(s.Bg, 48, caps)
	e.buf = append(e.buf, 'm')
}

// color appends ";38;5;n" / ";38;2;r;g;b" (or 48 for background).
func (e *escBuilder) color(c Color, base int, caps Capabilities) {
	if c.IsDefault() {
		return
	}
	if c.typ == ColorRGB && !caps.TrueColor {
		c = c.to256()
	}
	e.buf = append(e.buf, ';')
	e.writeInt(base)
	if c.typ == ColorRGB {
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(c.r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.b))
		return
	}
	e.buf = append(e.buf, ';', '5', ';')
	e.writeInt(int(c.r))
}
