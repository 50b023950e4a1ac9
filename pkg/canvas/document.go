package canvas

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/grindlemire/go-tui-designer/internal/debug"
	"github.com/grindlemire/go-tui-designer/pkg/drag"
)

// ChangeKind classifies a document mutation.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeUpdated
	ChangeMoved
	ChangeDeleted
	ChangeSelected
	ChangeReordered
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeUpdated:
		return "updated"
	case ChangeMoved:
		return "moved"
	case ChangeDeleted:
		return "deleted"
	case ChangeSelected:
		return "selected"
	case ChangeReordered:
		return "reordered"
	default:
		return "unknown"
	}
}

// Change describes a single mutation. ID is the affected component, or the
// newly selected one ("" when selection was cleared).
type Change struct {
	Kind ChangeKind
	ID   string
}

// Unsubscribe removes a listener registered with Subscribe.
type Unsubscribe func()

// listener is a registered change callback.
type listener struct {
	id     uint64
	fn     func(Change)
	active bool
}

// batchState tracks batch depth and the changes deferred while batching.
type batchState struct {
	depth   int
	pending []Change
	seen    map[Change]struct{}
}

var listenerID atomic.Uint64

// Document is the authoritative list of placed components.
type Document struct {
	mu         sync.RWMutex
	components []Component
	selected   string
	sizes      map[Kind]drag.Size
	newID      func(Kind) string
	commits    int

	lmu       sync.Mutex
	listeners []*listener
	batch     batchState
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithSizes overrides the rendered size of the given kinds.
func WithSizes(sizes map[Kind]drag.Size) DocumentOption {
	return func(d *Document) {
		for k, s := range sizes {
			d.sizes[k] = s
		}
	}
}

// WithIDGenerator replaces the default "<kind>-<uuid>" ID scheme.
func WithIDGenerator(fn func(Kind) string) DocumentOption {
	return func(d *Document) {
		d.newID = fn
	}
}

// NewDocument creates an empty document.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		sizes: DefaultSizes(),
		newID: func(k Kind) string { return string(k) + "-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add places a new component of kind at DefaultPosition with default props
// and selects it.
func (d *Document) Add(kind Kind) (Component, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Component{}, err
	}
	c := Component{
		ID:       d.newID(kind),
		Kind:     kind,
		Props:    DefaultProps(kind),
		Position: DefaultPosition,
	}
	d.mu.Lock()
	d.components = append(d.components, c)
	d.selected = c.ID
	d.mu.Unlock()

	debug.Log("Document.Add: %s", c.ID)
	d.Batch(func() {
		d.emit(Change{Kind: ChangeAdded, ID: c.ID})
		d.emit(Change{Kind: ChangeSelected, ID: c.ID})
	})
	return c.clone(), nil
}

// Insert places an existing component, e.g. one loaded from a layout file.
// The ID must be unique.
func (d *Document) Insert(c Component) error {
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	d.mu.Lock()
	if d.indexLocked(c.ID) >= 0 {
		d.mu.Unlock()
		return fmt.Errorf("insert %q: duplicate id", c.ID)
	}
	d.components = append(d.components, c.clone())
	d.mu.Unlock()

	d.emit(Change{Kind: ChangeAdded, ID: c.ID})
	return nil
}

// Get returns a copy of the component with the given ID.
func (d *Document) Get(id string) (Component, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := d.indexLocked(id)
	if i < 0 {
		return Component{}, false
	}
	return d.components[i].clone(), true
}

// Components returns a copy of all components in paint order (last on top).
func (d *Document) Components() []Component {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Component, len(d.components))
	for i, c := range d.components {
		out[i] = c.clone()
	}
	return out
}

// Len returns the number of components.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.components)
}

// Selected returns the selected component ID, or "".
func (d *Document) Selected() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selected
}

// Select selects id. An empty id clears the selection; an unknown id is
// ignored.
func (d *Document) Select(id string) {
	d.mu.Lock()
	if id != "" && d.indexLocked(id) < 0 {
		d.mu.Unlock()
		return
	}
	changed := d.selected != id
	d.selected = id
	d.mu.Unlock()

	if changed {
		d.emit(Change{Kind: ChangeSelected, ID: id})
	}
}

// SetPosition moves a component outside of a drag (property edits, nudges).
func (d *Document) SetPosition(id string, p drag.Point) error {
	if !p.IsFinite() {
		return fmt.Errorf("set position %q: non-finite position %+v", id, p)
	}
	if err := d.update(id, func(c *Component) { c.Position = p }); err != nil {
		return fmt.Errorf("set position: %w", err)
	}
	d.emit(Change{Kind: ChangeMoved, ID: id})
	return nil
}

// SetProp sets a single property.
func (d *Document) SetProp(id, key string, value any) error {
	if err := d.update(id, func(c *Component) {
		if c.Props == nil {
			c.Props = Props{}
		}
		c.Props[key] = value
	}); err != nil {
		return fmt.Errorf("set prop %q: %w", key, err)
	}
	d.emit(Change{Kind: ChangeUpdated, ID: id})
	return nil
}

// Delete removes a component and clears the selection if it was selected.
func (d *Document) Delete(id string) error {
	d.mu.Lock()
	i := d.indexLocked(id)
	if i < 0 {
		d.mu.Unlock()
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	d.components = append(d.components[:i], d.components[i+1:]...)
	wasSelected := d.selected == id
	if wasSelected {
		d.selected = ""
	}
	d.mu.Unlock()

	debug.Log("Document.Delete: %s", id)
	d.Batch(func() {
		d.emit(Change{Kind: ChangeDeleted, ID: id})
		if wasSelected {
			d.emit(Change{Kind: ChangeSelected, ID: ""})
		}
	})
	return nil
}

// BringToFront moves id to the end of the paint order.
func (d *Document) BringToFront(id string) {
	d.mu.Lock()
	i := d.indexLocked(id)
	if i < 0 || i == len(d.components)-1 {
		d.mu.Unlock()
		return
	}
	c := d.components[i]
	d.components = append(d.components[:i], d.components[i+1:]...)
	d.components = append(d.components, c)
	d.mu.Unlock()

	d.emit(Change{Kind: ChangeReordered, ID: id})
}

// Size returns the rendered size of kind.
func (d *Document) Size(kind Kind) drag.Size {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sizes[kind]
}

// SetSize changes the rendered size of kind. Every component of that kind is
// reported as updated.
func (d *Document) SetSize(kind Kind, size drag.Size) {
	d.mu.Lock()
	d.sizes[kind] = size
	var ids []string
	for _, c := range d.components {
		if c.Kind == kind {
			ids = append(ids, c.ID)
		}
	}
	d.mu.Unlock()

	d.Batch(func() {
		for _, id := range ids {
			d.emit(Change{Kind: ChangeUpdated, ID: id})
		}
	})
}

// Commits returns how many positions were written through Environment.
func (d *Document) Commits() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.commits
}

func (d *Document) update(id string, fn func(*Component)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	fn(&d.components[i])
	return nil
}

func (d *Document) indexLocked(id string) int {
	for i := range d.components {
		if d.components[i].ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers fn to be called after every change.
// Listeners run in registration order.
func (d *Document) Subscribe(fn func(Change)) Unsubscribe {
	id := listenerID.Add(1)
	l := &listener{id: id, fn: fn, active: true}

	d.lmu.Lock()
	d.listeners = append(d.listeners, l)
	d.lmu.Unlock()

	return func() {
		d.lmu.Lock()
		l.active = false
		d.lmu.Unlock()
	}
}

// Batch runs fn and delivers the changes it makes once fn returns.
// Repeated identical changes are delivered once, in first-seen order.
// Batches nest; delivery happens when the outermost batch ends.
func (d *Document) Batch(fn func()) {
	d.lmu.Lock()
	d.batch.depth++
	d.lmu.Unlock()

	defer func() {
		d.lmu.Lock()
		d.batch.depth--
		var pending []Change
		if d.batch.depth == 0 {
			pending = d.batch.pending
			d.batch.pending = nil
			d.batch.seen = nil
		}
		d.lmu.Unlock()

		for _, ch := range pending {
			d.notify(ch)
		}
	}()

	fn()
}

// emit delivers ch now, or defers it while batching.
func (d *Document) emit(ch Change) {
	d.lmu.Lock()
	if d.batch.depth > 0 {
		if d.batch.seen == nil {
			d.batch.seen = make(map[Change]struct{})
		}
		if _, dup := d.batch.seen[ch]; !dup {
			d.batch.seen[ch] = struct{}{}
			d.batch.pending = append(d.batch.pending, ch)
		}
		d.lmu.Unlock()
		return
	}
	d.lmu.Unlock()
	d.notify(ch)
}

func (d *Document) notify(ch Change) {
	d.lmu.Lock()
	active := make([]*listener, 0, len(d.listeners))
	for _, l := range d.listeners {
		if l.active {
			active = append(active, l)
		}
	}
	// Drop unsubscribed listeners so they do not accumulate.
	d.listeners = active
	fns := make([]func(Change), len(active))
	for i, l := range active {
		fns[i] = l.fn
	}
	d.lmu.Unlock()

	for _, fn := range fns {
		fn(ch)
	}
}
