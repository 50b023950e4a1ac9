package drag

// Object is the engine's read-only view of a placed object.
type Object struct {
	ID       string
	Position Point // top-left corner in canvas-local units
	Size     Size  // rendered bounding box
	Selected bool
}

// Environment is the application state the engine works against.
// The engine never caches what it returns.
type Environment interface {
	// Object returns the current stored state of id.
	// Returns false if the object does not exist (anymore).
	Object(id string) (Object, bool)

	// CanvasRect returns the canvas rectangle in screen coordinates,
	// measured at call time.
	CanvasRect() Rect

	// CommitPosition is the single authoritative write of a new position.
	CommitPosition(id string, p Point)
}

// FrameScheduler runs callbacks aligned to the host's display refresh.
type FrameScheduler interface {
	// RequestFrame schedules fn to run once at the next frame boundary on
	// the host's event loop goroutine.
	RequestFrame(fn func())
}

// FrameFunc adapts a plain function to FrameScheduler.
type FrameFunc func(fn func())

// RequestFrame calls f(fn).
func (f FrameFunc) RequestFrame(fn func()) {
	f(fn)
}

// VisualOverride receives transient, in-drag positions. Implementations
// should apply them without triggering layout so they are cheap enough to
// run every frame.
type VisualOverride interface {
	SetOverride(id string, p Point)
	ClearOverride(id string)
}

// PointerCapture routes all pointer events to the active session while it
// exists, even if the pointer leaves the object's visual bounds.
type PointerCapture interface {
	CapturePointer(id string)
	ReleasePointer(id string)
}

// InteractionGuard suppresses host interactions (text selection, hover
// effects, ...) for the lifetime of a session. The returned restore func is
// called exactly once on every exit path.
type InteractionGuard interface {
	Suppress() (restore func())
}

// GuardFunc adapts a plain function to InteractionGuard.
type GuardFunc func() (restore func())

// Suppress calls f.
func (f GuardFunc) Suppress() func() {
	return f()
}

// Selector is told which object a new session grabbed when that object is
// not already selected.
type Selector interface {
	Select(id string)
}
