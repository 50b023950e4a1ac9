package term

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault is the terminal's default color.
	ColorDefault ColorType = iota
	// ColorANSI is an ANSI 256 palette index.
	ColorANSI
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// ANSIColor returns a color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("hex color %q: want #RGB or #RRGGBB", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", hex, err)
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is HexColor for constant inputs. It panics on a malformed value.
func MustHex(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Type returns the color representation.
func (c Color) Type() ColorType { return c.typ }

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool { return c.typ == ColorDefault }

// RGB returns the components of a true color.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// to256 approximates a true color with the 6x6x6 cube of the 256 palette.
func (c Color) to256() Color {
	if c.typ != ColorRGB {
		return c
	}
	q := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return ANSIColor(16 + 36*q(c.r) + 6*q(c.g) + q(c.b))
}

// Attr is a bit set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Style combines attributes with foreground and background colors.
// The zero value is the terminal default style.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Foreground returns s with the foreground set.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns s with the background set.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns s with bold enabled.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns s with dim enabled.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Underline returns s with underline enabled.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns s with foreground and background swapped.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// HasAttr reports whether a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a != 0
}
