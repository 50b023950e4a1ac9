package designer

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
	"github.com/grindlemire/go-tui-designer/pkg/term"
)

var kindLabels = map[canvas.Kind]string{
	canvas.KindButton:    "Button",
	canvas.KindCard:      "Card",
	canvas.KindBentoGrid: "Bento Grid",
}

// Draw implements term.Handler.
func (d *Designer) Draw(s *term.Screen) {
	d.width, d.height = s.Size()
	r := d.regions()
	t := d.theme

	s.Fill(term.Rect{X: 0, Y: 0, Width: d.width, Height: d.height}, ' ', t.Chrome)
	d.drawHeader(s, r)
	d.drawPalette(s, r)

	s.Box(r.frame, term.BorderSingle, t.Canvas)
	s.Fill(r.canvas, ' ', t.Canvas)
	s.SetClip(r.canvas)
	for _, c := range d.doc.Components() {
		d.drawComponent(s, r, c)
	}
	s.ResetClip()

	if r.panel.Width > 0 {
		d.drawPanel(s, r)
	}
	s.Fill(r.status, ' ', t.Accent)
	s.SetString(r.status.X+1, r.status.Y, d.status, t.Accent)
}

func (d *Designer) drawHeader(s *term.Screen, r regions) {
	t := d.theme
	s.Fill(r.header, ' ', t.Accent)
	n := s.SetString(1, r.header.Y, "designer", t.Accent.Bold())
	label := " " + t.Label
	s.SetString(1+n, r.header.Y, label, t.Accent)
	if d.hintHidden {
		return
	}
	hint := "t theme  q quit"
	s.SetString(r.header.Right()-len(hint)-1, r.header.Y, hint, t.Accent)
}

func (d *Designer) drawPalette(s *term.Screen, r regions) {
	t := d.theme
	s.SetString(r.palette.X+1, r.palette.Y, "Components", t.Chrome.Bold())
	for i, k := range canvas.Kinds() {
		item := r.paletteItem(i)
		s.SetString(item.X, item.Y, fmt.Sprintf("%d %s", i+1, kindLabels[k]), t.Chrome)
	}
}

// position is where c is shown: the drag override while it is dragged,
// its stored position otherwise.
func (d *Designer) position(c canvas.Component) drag.Point {
	if p, ok := d.overrides.Get(c.ID); ok {
		return p
	}
	return c.Position
}

func (d *Designer) drawComponent(s *term.Screen, r regions, c canvas.Component) {
	t := d.theme
	rect := r.componentRect(d.position(c), d.doc.Size(c.Kind))
	selected := c.ID == d.doc.Selected()
	dragging := d.engine != nil && d.engine.Dragging(c.ID)
	props := d.displayProps(c)

	style := t.Component
	switch {
	case dragging:
		style = t.Dragging
	case selected:
		style = t.Selected
	}

	var look buttonLook
	if c.Kind == canvas.KindButton {
		look = t.button(props, style)
	} else {
		look = buttonLook{border: term.BorderRounded, bordered: true}
	}
	if selected {
		look.border = term.BorderDouble
	}
	if look.bordered || selected || dragging {
		s.Box(rect, look.border, style)
	} else {
		s.Fill(rect, ' ', style)
	}

	inner := term.Rect{X: rect.X + 1, Y: rect.Y + 1, Width: max(rect.Width-2, 0), Height: max(rect.Height-2, 0)}
	switch c.Kind {
	case canvas.KindButton:
		pad := strings.Repeat(" ", look.pad)
		centered(s, inner, inner.Y+inner.Height/2, pad+props.String("children")+pad, look.text)
	case canvas.KindCard:
		y := inner.Y
		if props.Bool("showImage") && inner.Height > 2 {
			s.Fill(term.Rect{X: inner.X, Y: y, Width: inner.Width, Height: 1}, '░', style)
			y++
		}
		writeClipped(s, inner.X+1, y, inner.Width-2, props.String("title"), style.Bold())
		writeClipped(s, inner.X+1, y+1, inner.Width-2, props.String("description"), style)
	case canvas.KindBentoGrid:
		drawBento(s, inner, props, style)
	}

	if selected {
		if del, ok := deleteControl(rect); ok {
			s.SetString(del.X, del.Y, "[x]", t.Delete)
		}
	}
}

// buttonLook is how a button's variant and size are drawn.
type buttonLook struct {
	border   term.BorderStyle
	bordered bool
	text     term.Style
	pad      int // spaces either side of the label
}

// button returns the look of a button with props p drawn in base.
func (t Theme) button(p canvas.Props, base term.Style) buttonLook {
	l := buttonLook{border: term.BorderRounded, bordered: true, text: base, pad: 1}
	switch p.String("variant") {
	case "secondary":
	case "outline":
		l.border = term.BorderSingle
	case "ghost":
		l.bordered = false
	case "destructive":
		l.text = t.Delete.Bold()
	default:
		l.text = base.Reverse().Bold()
	}
	switch p.String("size") {
	case "sm":
		l.pad = 0
	case "lg":
		l.pad = 2
		l.text = l.text.Bold()
	}
	if p.Bool("disabled") {
		l.text = l.text.Dim()
	}
	return l
}

// drawBento splits inner into a columns x rows grid of boxes titled with
// the grid's items in order.
func drawBento(s *term.Screen, inner term.Rect, p canvas.Props, style term.Style) {
	cols := max(p.Int("columns", 3), 1)
	rows := max(p.Int("rows", 2), 1)
	items := p.Items("items")
	cw, rh := inner.Width/cols, inner.Height/rows
	if cw < 2 || rh < 2 {
		return
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := term.Rect{X: inner.X + col*cw, Y: inner.Y + row*rh, Width: cw, Height: rh}
			s.Box(cell, term.BorderSingle, style)
			if i := row*cols + col; i < len(items) {
				writeClipped(s, cell.X+1, cell.Y+1, cell.Width-2, items[i].String("title"), style)
			}
		}
	}
}

func (d *Designer) drawPanel(s *term.Screen, r regions) {
	t := d.theme
	p := r.panel
	s.Box(p, term.BorderSingle, t.Chrome)
	x, y, w := p.X+2, p.Y+1, p.Width-4
	line := func(text string, style term.Style) {
		if y < p.Bottom()-1 {
			writeClipped(s, x, y, w, text, style)
		}
		y++
	}

	line("Properties", t.Chrome.Bold())
	c, ok := d.doc.Get(d.doc.Selected())
	if !ok {
		line("nothing selected", t.Chrome.Dim())
	} else {
		pos := d.position(c)
		line("id   "+shortID(c.ID), t.Chrome)
		line("kind "+string(c.Kind), t.Chrome)
		line(fmt.Sprintf("x %d  y %d", round(pos.X), round(pos.Y)), t.Chrome)
		for _, k := range c.Props.Keys() {
			line(k+": "+propText(c.Props, k), t.Chrome)
		}
	}
	if d.edit != nil {
		y++
		line("edit "+d.edit.key(), t.Accent)
		line(string(d.edit.text)+"▏", t.Accent)
		line("tab next field", t.Chrome.Dim())
		return
	}
	y++
	for _, h := range []string{"arrows nudge", "tab next", "enter edit text", "d toggle", "v variant  s size", "+/- columns  [/] rows", "del remove", "esc cancel"} {
		line(h, t.Chrome.Dim())
	}
}

func propText(p canvas.Props, key string) string {
	if list, ok := p[key].([]any); ok {
		return fmt.Sprintf("%d items", len(list))
	}
	return fmt.Sprint(p[key])
}

// centered writes text centered horizontally in rect on row y.
func centered(s *term.Screen, rect term.Rect, y int, text string, style term.Style) {
	runes := []rune(text)
	if len(runes) > rect.Width {
		runes = runes[:max(rect.Width, 0)]
	}
	x := rect.X + (rect.Width-len(runes))/2
	s.SetString(x, y, string(runes), style)
}

// writeClipped writes at most width runes of text, marking truncation.
func writeClipped(s *term.Screen, x, y, width int, text string, style term.Style) {
	if width <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > width {
		runes = append(runes[:max(width-1, 0)], '…')
	}
	s.SetString(x, y, strings.TrimRight(string(runes), " "), style)
}
