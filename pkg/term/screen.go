package term

import "strings"

// Cell is one character cell.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' '}

// CellChange is a cell that differs from what the terminal shows.
type CellChange struct {
	X, Y int
	Cell Cell
}

// Rect is an integer cell rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// BorderStyle selects the runes used by Screen.Box.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderRounded
	BorderDouble
)

// borderRunes holds top-left, top-right, bottom-left, bottom-right,
// horizontal and vertical runes.
var borderRunes = map[BorderStyle][6]rune{
	BorderSingle:  {'┌', '┐', '└', '┘', '─', '│'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
}

// Screen is a double-buffered grid of cells. Drawing goes to the back
// buffer; Diff reports what changed since the last Swap.
type Screen struct {
	front  []Cell
	back   []Cell
	width  int
	height int
	clip   *Rect
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Size returns the screen dimensions.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Resize discards both buffers and allocates blank ones. The next Diff
// reports every cell that is not blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	s.width, s.height = width, height
	s.front = make([]Cell, width*height)
	s.back = make([]Cell, width*height)
	for i := range s.front {
		s.front[i] = blank
		s.back[i] = blank
	}
}

func (s *Screen) idx(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// Cell returns the back buffer cell at (x, y).
func (s *Screen) Cell(x, y int) Cell {
	i := s.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return s.back[i]
}

// SetClip restricts drawing to r until ResetClip.
func (s *Screen) SetClip(r Rect) {
	s.clip = &r
}

// ResetClip removes the clip rectangle.
func (s *Screen) ResetClip() {
	s.clip = nil
}

// SetRune draws r at (x, y). Writes outside the screen or the clip
// rectangle are dropped.
func (s *Screen) SetRune(x, y int, r rune, style Style) {
	if s.clip != nil && !s.clip.Contains(x, y) {
		return
	}
	if i := s.idx(x, y); i >= 0 {
		s.back[i] = Cell{Rune: r, Style: style}
	}
}

// SetString draws str starting at (x, y), clipped to the screen, and returns
// the number of columns used.
func (s *Screen) SetString(x, y int, str string, style Style) int {
	n := 0
	for _, r := range str {
		s.SetRune(x+n, y, r, style)
		n++
	}
	return n
}

// Fill paints rect with r.
func (s *Screen) Fill(rect Rect, r rune, style Style) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			s.SetRune(x, y, r, style)
		}
	}
}

// Box draws a border around rect and fills its interior with spaces in
// style. Rectangles smaller than 2x2 are filled only.
func (s *Screen) Box(rect Rect, border BorderStyle, style Style) {
	s.Fill(rect, ' ', style)
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	b, ok := borderRunes[border]
	if !ok {
		b = borderRunes[BorderSingle]
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X + 1; x < right; x++ {
		s.SetRune(x, rect.Y, b[4], style)
		s.SetRune(x, bottom, b[4], style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		s.SetRune(rect.X, y, b[5], style)
		s.SetRune(right, y, b[5], style)
	}
	s.SetRune(rect.X, rect.Y, b[0], style)
	s.SetRune(right, rect.Y, b[1], style)
	s.SetRune(rect.X, bottom, b[2], style)
	s.SetRune(right, bottom, b[3], style)
}

// Clear blanks the back buffer.
func (s *Screen) Clear() {
	for i := range s.back {
		s.back[i] = blank
	}
}

// Diff returns the cells that changed, in row-major order.
func (s *Screen) Diff() []CellChange {
	changes := make([]CellChange, 0, s.width)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := y*s.width + x
			if s.back[i] != s.front[i] {
				changes = append(changes, CellChange{X: x, Y: y, Cell: s.back[i]})
			}
		}
	}
	return changes
}

// Swap marks the back buffer as displayed.
func (s *Screen) Swap() {
	copy(s.front, s.back)
}

// String renders the back buffer as text, one line per row, with trailing
// spaces trimmed.
func (s *Screen) String() string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		var line strings.Builder
		for x := 0; x < s.width; x++ {
			r := s.back[y*s.width+x].Rune
			if r == 0 {
				r = ' '
			}
			line.WriteRune(r)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < s.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
