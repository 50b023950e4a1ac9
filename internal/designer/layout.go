package designer

import (
	"math"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
	"github.com/grindlemire/go-tui-designer/pkg/term"
)

const (
	paletteWidth = 18
	panelWidth   = 30
	// Below this width the properties panel is hidden.
	panelMinScreenWidth = 72
)

// regions is the screen split into the designer's areas.
type regions struct {
	header  term.Rect
	palette term.Rect
	frame   term.Rect // canvas border
	canvas  term.Rect // canvas interior, the drag area
	panel   term.Rect
	status  term.Rect
}

// computeRegions lays out a width x height screen. fixedW and fixedH pin the
// canvas interior size when positive, limited to the space available.
func computeRegions(width, height, fixedW, fixedH int) regions {
	var r regions
	r.header = term.Rect{X: 0, Y: 0, Width: width, Height: 1}
	r.status = term.Rect{X: 0, Y: max(height-1, 0), Width: width, Height: 1}

	bodyY := 1
	bodyH := max(height-2, 0)
	r.palette = term.Rect{X: 0, Y: bodyY, Width: min(paletteWidth, width), Height: bodyH}

	pw := 0
	if width >= panelMinScreenWidth {
		pw = panelWidth
	}
	r.panel = term.Rect{X: width - pw, Y: bodyY, Width: pw, Height: bodyH}

	fx := r.palette.Right()
	fw := max(r.panel.X-fx, 0)
	r.frame = term.Rect{X: fx, Y: bodyY, Width: fw, Height: bodyH}

	inner := term.Rect{X: fx + 1, Y: bodyY + 1, Width: max(fw-2, 0), Height: max(bodyH-2, 0)}
	if fixedW > 0 && fixedW < inner.Width {
		inner.Width = fixedW
		r.frame.Width = fixedW + 2
	}
	if fixedH > 0 && fixedH < inner.Height {
		inner.Height = fixedH
		r.frame.Height = fixedH + 2
	}
	r.canvas = inner
	return r
}

// dragRect converts the canvas interior to engine screen coordinates.
func (r regions) dragRect() drag.Rect {
	c := r.canvas
	return drag.NewRect(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height))
}

// paletteItem returns the rect of the i-th palette entry.
func (r regions) paletteItem(i int) term.Rect {
	return term.Rect{X: r.palette.X + 1, Y: r.palette.Y + 2 + i, Width: max(r.palette.Width-2, 0), Height: 1}
}

// componentRect places a component of the given size at canvas-local p.
func (r regions) componentRect(p drag.Point, size drag.Size) term.Rect {
	return term.Rect{
		X:      r.canvas.X + round(p.X),
		Y:      r.canvas.Y + round(p.Y),
		Width:  round(size.Width),
		Height: round(size.Height),
	}
}

// deleteControl is the "[x]" at the top right of a selected component.
func deleteControl(rect term.Rect) (term.Rect, bool) {
	if rect.Width < 5 || rect.Height < 1 {
		return term.Rect{}, false
	}
	return term.Rect{X: rect.Right() - 4, Y: rect.Y, Width: 3, Height: 1}, true
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// hitKind classifies what lies under the pointer.
type hitKind int

const (
	hitNone hitKind = iota
	hitPalette
	hitDelete
	hitComponent
	hitCanvas
)

type hit struct {
	kind hitKind
	id   string
	pal  canvas.Kind
}

// hitTest finds the target at screen cell (x, y). Components are tested
// topmost first; the delete control of the selected component wins over
// its grab surface.
func (d *Designer) hitTest(x, y int) hit {
	r := d.regions()

	for i, k := range canvas.Kinds() {
		if r.paletteItem(i).Contains(x, y) {
			return hit{kind: hitPalette, pal: k}
		}
	}
	if !r.canvas.Contains(x, y) {
		return hit{kind: hitNone}
	}

	comps := d.doc.Components()
	selected := d.doc.Selected()
	for i := len(comps) - 1; i >= 0; i-- {
		c := comps[i]
		rect := r.componentRect(c.Position, d.doc.Size(c.Kind))
		if c.ID == selected {
			if del, ok := deleteControl(rect); ok && del.Contains(x, y) {
				return hit{kind: hitDelete, id: c.ID}
			}
		}
		if rect.Contains(x, y) {
			return hit{kind: hitComponent, id: c.ID}
		}
	}
	return hit{kind: hitCanvas}
}
