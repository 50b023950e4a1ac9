package drag

import (
	"fmt"
	"log/slog"

	"github.com/grindlemire/go-tui-designer/internal/debug"
)

// Engine drives drag sessions for the objects of one canvas.
type Engine struct {
	env   Environment
	sched FrameScheduler

	override VisualOverride
	capture  PointerCapture
	guard    InteractionGuard
	selector Selector
	limits   Limits
	grid     float64
	logger   *slog.Logger
	metrics  *Metrics
	onSettle func(Result)

	nextID uint64
	cur    *session
}

// New creates an engine reading from env and pacing its work with sched.
func New(env Environment, sched FrameScheduler, opts ...Option) (*Engine, error) {
	if env == nil {
		return nil, fmt.Errorf("drag: nil environment")
	}
	if sched == nil {
		return nil, fmt.Errorf("drag: nil frame scheduler")
	}
	e := &Engine{
		env:   env,
		sched: sched,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("drag: %w", err)
		}
	}
	if e.logger == nil {
		e.logger = debug.Logger()
	}
	return e, nil
}

// SetSnapGrid changes the snap grid between sessions. Values that are
// negative or not finite disable snapping.
func (e *Engine) SetSnapGrid(grid float64) {
	if grid < 0 || !finite(grid) {
		grid = 0
	}
	e.grid = grid
}

// BeginDrag starts a session for id with the pointer at the given screen
// position. It fails with ErrSessionActive if a session already exists and
// with ErrUnknownObject if id is not in the environment.
//
// The pointer-to-object offset is computed here, once, against the object's
// stored position.
func (e *Engine) BeginDrag(id string, pointer Point) (SessionHandle, error) {
	if e.cur != nil {
		e.metrics.sessionRejected()
		e.logger.Debug("drag rejected", "object", id, "active", e.cur.objectID, "reason", ErrSessionActive)
		return SessionHandle{}, fmt.Errorf("begin drag %q: %w", id, ErrSessionActive)
	}
	obj, ok := e.env.Object(id)
	if !ok {
		e.metrics.sessionRejected()
		e.logger.Debug("drag rejected", "object", id, "reason", ErrUnknownObject)
		return SessionHandle{}, fmt.Errorf("begin drag %q: %w", id, ErrUnknownObject)
	}

	canvas := e.env.CanvasRect()
	start := obj.Position.Or(Point{})
	// Without a usable pointer, grab the object by its top-left corner.
	pointer = pointer.Or(canvas.TopLeft().Add(Offset{DX: start.X, DY: start.Y}))

	e.nextID++
	s := &session{
		id:          e.nextID,
		objectID:    id,
		offset:      ToLocal(pointer, canvas).Sub(start),
		last:        ClampWithin(start, obj.Size, canvas.Size(), e.limits),
		lastPointer: pointer,
		phase:       PhaseArmed,
	}
	e.cur = s

	if e.capture != nil {
		e.capture.CapturePointer(id)
	}
	if e.guard != nil {
		s.restore = once(e.guard.Suppress())
	}
	if !obj.Selected && e.selector != nil {
		e.selector.Select(id)
	}

	s.phase = PhaseActive
	e.metrics.sessionStarted()
	e.logger.Debug("drag begin", "session", s.id, "object", id,
		"offset_x", s.offset.DX, "offset_y", s.offset.DY)
	return SessionHandle{id: s.id, engine: e}, nil
}

// UpdatePointer records the latest pointer position in screen coordinates.
// The position is applied on the next frame; calls arriving before that
// frame replace each other. No-op without an active session.
func (e *Engine) UpdatePointer(pointer Point) {
	s := e.cur
	if s == nil || s.phase != PhaseActive {
		return
	}
	s.pending = pointer.Or(s.lastPointer)
	s.hasPending = true
	e.metrics.pointerUpdate(!e.requestFrame(s))
}

// Invalidate asks the engine to re-check the object being dragged on the
// next frame. Hosts call it when an object is deleted so that a session on
// a vanished object ends within one frame even if the pointer stays still.
func (e *Engine) Invalidate(id string) {
	s := e.cur
	if s == nil || s.phase != PhaseActive || s.objectID != id {
		return
	}
	e.requestFrame(s)
}

// EndDrag commits the last candidate position and ends the session.
// A pointer position still waiting for its frame is applied first.
// No-op without an active session, so a second call is harmless.
func (e *Engine) EndDrag() {
	s := e.cur
	if s == nil || s.phase != PhaseActive {
		e.logger.Debug("drag end ignored", "reason", ErrInvalidSession)
		return
	}
	e.settle(s)
}

// LoseCapture handles the host revoking pointer capture (window blur,
// forced release). The session settles exactly as on pointer-up.
func (e *Engine) LoseCapture() {
	if s := e.cur; s != nil {
		e.logger.Debug("drag capture lost", "session", s.id, "object", s.objectID)
	}
	e.EndDrag()
}

// Cancel ends the session without writing to the store.
// No-op without an active session.
func (e *Engine) Cancel() {
	s := e.cur
	if s == nil || s.phase != PhaseActive {
		e.logger.Debug("drag cancel ignored", "reason", ErrInvalidSession)
		return
	}
	e.finish(s, OutcomeCancelled, ErrCancelled)
}

// Active reports whether a session is in progress.
func (e *Engine) Active() bool {
	return e.cur != nil
}

// Dragging reports whether id is the object of the active session.
func (e *Engine) Dragging(id string) bool {
	return e.cur != nil && e.cur.objectID == id
}

// Session returns a snapshot of the active session.
func (e *Engine) Session() (Session, bool) {
	if e.cur == nil {
		return Session{}, false
	}
	return e.cur.snapshot(), true
}

// CurrentVisualPosition returns the in-drag position of id while it is being
// dragged, and its stored position otherwise. Returns false if id does not
// exist.
func (e *Engine) CurrentVisualPosition(id string) (Point, bool) {
	if s := e.cur; s != nil && s.objectID == id {
		return s.last, true
	}
	obj, ok := e.env.Object(id)
	if !ok {
		return Point{}, false
	}
	return obj.Position, true
}

func (e *Engine) current(id uint64) *session {
	if e.cur != nil && e.cur.id == id {
		return e.cur
	}
	return nil
}

// requestFrame schedules a frame for s unless one is already pending.
// Returns false if the request folded into a pending frame.
func (e *Engine) requestFrame(s *session) bool {
	if s.frameRequested {
		return false
	}
	s.frameRequested = true
	e.sched.RequestFrame(func() { e.frame(s) })
	return true
}

// frame is the per-frame work: validate the object, then apply the latest
// pointer position. Frames belonging to a finished session do nothing.
func (e *Engine) frame(s *session) {
	s.frameRequested = false
	if e.cur != s || s.phase != PhaseActive {
		return
	}
	obj, ok := e.env.Object(s.objectID)
	if !ok {
		e.finish(s, OutcomeVanished, ErrObjectVanished)
		return
	}
	if s.hasPending {
		e.apply(s, obj)
	}
}

// apply runs transform, snap, clamp and visual feedback for the pending
// pointer. It never writes to the store.
func (e *Engine) apply(s *session, obj Object) {
	pointer := s.pending
	s.hasPending = false
	s.lastPointer = pointer

	canvas := e.env.CanvasRect()
	local := ToLocal(pointer, canvas)
	candidate := Point{X: local.X - s.offset.DX, Y: local.Y - s.offset.DY}
	if e.grid > 0 {
		candidate = SnapToGrid(candidate, e.grid)
	}

	degenerate := !obj.Size.Fits(canvas.Size())
	if degenerate {
		e.logger.Debug("drag clamp", "session", s.id, "object", s.objectID, "reason", ErrDegenerateBounds)
	}
	s.last = ClampWithin(candidate, obj.Size, canvas.Size(), e.limits)
	s.frames++
	e.metrics.frame(degenerate)

	if e.override != nil {
		e.override.SetOverride(s.objectID, s.last)
	}
}

// settle is the active -> settling transition: flush, clamp late, commit
// once, tear down.
func (e *Engine) settle(s *session) {
	obj, ok := e.env.Object(s.objectID)
	if !ok {
		e.finish(s, OutcomeVanished, ErrObjectVanished)
		return
	}
	if s.hasPending {
		e.apply(s, obj)
	}

	// The canvas or the object may have changed since the last frame, and a
	// session without frames still holds the stored position.
	s.last = ClampWithin(s.last, obj.Size, e.env.CanvasRect().Size(), e.limits)
	if e.override != nil {
		e.override.SetOverride(s.objectID, s.last)
	}

	s.phase = PhaseSettling
	e.env.CommitPosition(s.objectID, s.last)
	e.finish(s, OutcomeCommitted, nil)
}

// finish releases everything the session acquired and returns to idle.
// The visual override is cleared last so that after a commit the store
// already holds the value being displayed.
func (e *Engine) finish(s *session, outcome Outcome, reason error) {
	s.phase = PhaseSettling
	if e.capture != nil {
		e.capture.ReleasePointer(s.objectID)
	}
	if s.restore != nil {
		s.restore()
	}
	if e.override != nil {
		e.override.ClearOverride(s.objectID)
	}
	if e.cur == s {
		e.cur = nil
	}
	s.phase = PhaseIdle
	s.hasPending = false

	e.metrics.sessionFinished(outcome, s.frames)
	e.logger.Debug("drag "+outcome.String(), "session", s.id, "object", s.objectID,
		"x", s.last.X, "y", s.last.Y, "frames", s.frames)

	if e.onSettle != nil {
		e.onSettle(Result{
			SessionID: s.id,
			ObjectID:  s.objectID,
			Outcome:   outcome,
			Position:  s.last,
			Frames:    s.frames,
			Reason:    reason,
		})
	}
}
