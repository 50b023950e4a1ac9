package designer

import (
	"unicode"

	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/term"
)

const maxTextLen = 64

// textEdit is an open edit of a component's text properties. Only the
// field being typed is held here; the others are already in the document.
type textEdit struct {
	id    string
	keys  []string
	field int
	text  []rune
}

func (e *textEdit) key() string {
	return e.keys[e.field]
}

// startEdit opens an edit on the first text property of the selected
// component. Kinds without text properties are ignored.
func (d *Designer) startEdit() {
	if d.engine.Active() {
		return
	}
	c, ok := d.doc.Get(d.doc.Selected())
	if !ok {
		return
	}
	keys := canvas.TextProps(c.Kind)
	if len(keys) == 0 {
		return
	}
	d.edit = &textEdit{id: c.ID, keys: keys, text: []rune(c.Props.String(keys[0]))}
	d.status = "editing " + keys[0] + ": enter save, esc discard"
}

// handleEditKey routes every key to the open edit.
func (d *Designer) handleEditKey(e term.KeyEvent) {
	ed := d.edit
	switch e.Key {
	case term.KeyCtrlC:
		d.edit = nil
		d.quit()
	case term.KeyEnter:
		if d.saveEdit() {
			d.status = "set " + ed.key()
		}
		d.edit = nil
	case term.KeyEscape:
		d.edit = nil
		d.status = "edit discarded"
	case term.KeyTab:
		if !d.saveEdit() {
			d.edit = nil
			return
		}
		ed.field = (ed.field + 1) % len(ed.keys)
		c, _ := d.doc.Get(ed.id)
		ed.text = []rune(c.Props.String(ed.key()))
		d.status = "editing " + ed.key() + ": enter save, esc discard"
	case term.KeyBackspace, term.KeyDelete:
		if n := len(ed.text); n > 0 {
			ed.text = ed.text[:n-1]
		}
	case term.KeyRune:
		if unicode.IsPrint(e.Rune) && len(ed.text) < maxTextLen {
			ed.text = append(ed.text, e.Rune)
		}
	}
}

// saveEdit writes the field being typed to the document.
func (d *Designer) saveEdit() bool {
	ed := d.edit
	if err := d.doc.SetProp(ed.id, ed.key(), string(ed.text)); err != nil {
		d.status = err.Error()
		return false
	}
	return true
}

// displayProps returns c's properties with any open edit applied, so the
// canvas previews the text being typed.
func (d *Designer) displayProps(c canvas.Component) canvas.Props {
	if d.edit == nil || d.edit.id != c.ID {
		return c.Props
	}
	p := c.Props.Clone()
	p[d.edit.key()] = string(d.edit.text)
	return p
}
