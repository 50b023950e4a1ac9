package drag

// fakeEnv is an in-memory Environment that records every commit.
type fakeEnv struct {
	objects map[string]Object
	canvas  Rect
	commits []commit

	// onCommit runs inside CommitPosition, after the write is recorded.
	onCommit func(id string, p Point)
}

type commit struct {
	id string
	p  Point
}

func newFakeEnv(canvas Rect, objects ...Object) *fakeEnv {
	env := &fakeEnv{objects: make(map[string]Object), canvas: canvas}
	for _, o := range objects {
		env.objects[o.ID] = o
	}
	return env
}

func (f *fakeEnv) Object(id string) (Object, bool) {
	o, ok := f.objects[id]
	return o, ok
}

func (f *fakeEnv) CanvasRect() Rect {
	return f.canvas
}

func (f *fakeEnv) CommitPosition(id string, p Point) {
	f.commits = append(f.commits, commit{id: id, p: p})
	if o, ok := f.objects[id]; ok {
		o.Position = p
		f.objects[id] = o
	}
	if f.onCommit != nil {
		f.onCommit(id, p)
	}
}

func (f *fakeEnv) remove(id string) {
	delete(f.objects, id)
}

// recordingCapture remembers capture/release calls in order.
type recordingCapture struct {
	calls []string
}

func (r *recordingCapture) CapturePointer(id string) { r.calls = append(r.calls, "capture:"+id) }
func (r *recordingCapture) ReleasePointer(id string) { r.calls = append(r.calls, "release:"+id) }

// countingGuard counts acquisitions and releases.
type countingGuard struct {
	acquired, released int
}

func (g *countingGuard) Suppress() func() {
	g.acquired++
	return func() { g.released++ }
}

type recordingSelector struct {
	selected []string
}

func (r *recordingSelector) Select(id string) { r.selected = append(r.selected, id) }

// overrideLog records every SetOverride in order.
type overrideLog struct {
	*OverrideMap
	history []Point
}

func newOverrideLog() *overrideLog {
	return &overrideLog{OverrideMap: NewOverrideMap()}
}

func (o *overrideLog) SetOverride(id string, p Point) {
	o.history = append(o.history, p)
	o.OverrideMap.SetOverride(id, p)
}
