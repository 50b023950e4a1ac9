package drag

// OverrideMap is a VisualOverride that simply remembers the latest override
// per object. Renderers consult Get before falling back to stored state.
type OverrideMap struct {
	positions map[string]Point
}

// Ensure OverrideMap implements VisualOverride.
var _ VisualOverride = (*OverrideMap)(nil)

// NewOverrideMap creates an empty override map.
func NewOverrideMap() *OverrideMap {
	return &OverrideMap{positions: make(map[string]Point)}
}

// SetOverride records p as the visual position of id.
func (m *OverrideMap) SetOverride(id string, p Point) {
	m.positions[id] = p
}

// ClearOverride drops any override for id.
func (m *OverrideMap) ClearOverride(id string) {
	delete(m.positions, id)
}

// Get returns the override for id, if any.
func (m *OverrideMap) Get(id string) (Point, bool) {
	p, ok := m.positions[id]
	return p, ok
}

// Len returns the number of active overrides.
func (m *OverrideMap) Len() int {
	return len(m.positions)
}

// Guards combines several guards into one. Restores run in reverse order.
func Guards(guards ...InteractionGuard) InteractionGuard {
	return GuardFunc(func() func() {
		restores := make([]func(), 0, len(guards))
		for _, g := range guards {
			if g == nil {
				continue
			}
			if r := g.Suppress(); r != nil {
				restores = append(restores, r)
			}
		}
		return func() {
			for i := len(restores) - 1; i >= 0; i-- {
				restores[i]()
			}
		}
	})
}

// once wraps fn so that only the first call runs it.
func once(fn func()) func() {
	done := fn == nil
	return func() {
		if done {
			return
		}
		done = true
		fn()
	}
}
