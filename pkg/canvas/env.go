package canvas

import "github.com/grindlemire/go-tui-designer/pkg/drag"

// Environment adapts a Document to drag.Environment. rect is called every
// time the engine needs the canvas rectangle and must measure it fresh.
func (d *Document) Environment(rect func() drag.Rect) drag.Environment {
	return &environment{doc: d, rect: rect}
}

type environment struct {
	doc  *Document
	rect func() drag.Rect
}

// Ensure environment implements drag.Environment, and Document drag.Selector.
var (
	_ drag.Environment = (*environment)(nil)
	_ drag.Selector    = (*Document)(nil)
)

func (e *environment) Object(id string) (drag.Object, bool) {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	i := e.doc.indexLocked(id)
	if i < 0 {
		return drag.Object{}, false
	}
	c := e.doc.components[i]
	return drag.Object{
		ID:       c.ID,
		Position: c.Position,
		Size:     e.doc.sizes[c.Kind],
		Selected: e.doc.selected == c.ID,
	}, true
}

func (e *environment) CanvasRect() drag.Rect {
	return e.rect()
}

func (e *environment) CommitPosition(id string, p drag.Point) {
	if err := e.doc.update(id, func(c *Component) { c.Position = p }); err != nil {
		return
	}
	e.doc.mu.Lock()
	e.doc.commits++
	e.doc.mu.Unlock()
	e.doc.emit(Change{Kind: ChangeMoved, ID: id})
}
