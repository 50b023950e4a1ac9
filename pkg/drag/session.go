package drag

// Phase is the lifecycle stage of a drag session.
type Phase int

const (
	// PhaseIdle means no session exists.
	PhaseIdle Phase = iota
	// PhaseArmed is the brief stage between pointer-down and the session
	// being fully set up.
	PhaseArmed
	// PhaseActive means pointer movement is being tracked.
	PhaseActive
	// PhaseSettling means the session is committing or tearing down.
	PhaseSettling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseActive:
		return "active"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Outcome says how a session finished.
type Outcome int

const (
	// OutcomeCommitted means the last candidate was written to the store.
	OutcomeCommitted Outcome = iota
	// OutcomeCancelled means the session was cancelled without writing.
	OutcomeCancelled
	// OutcomeVanished means the object disappeared and nothing was written.
	OutcomeVanished
)

// String returns the outcome name, also used as a metrics label.
func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeVanished:
		return "vanished"
	default:
		return "unknown"
	}
}

// Result describes a finished session.
type Result struct {
	SessionID uint64
	ObjectID  string
	Outcome   Outcome
	Position  Point // committed position; last candidate otherwise
	Frames    int
	Reason    error // nil when committed
}

// Session is a read-only snapshot of the active session.
type Session struct {
	ID            uint64
	ObjectID      string
	Offset        Offset
	LastCandidate Point
	Phase         Phase
	Frames        int
}

// session is the mutable state behind Session.
type session struct {
	id       uint64
	objectID string

	// offset is fixed at BeginDrag and never recomputed.
	offset Offset
	last   Point

	// lastPointer is the last finite pointer seen, used in place of
	// non-finite input.
	lastPointer Point
	pending     Point
	hasPending  bool

	frameRequested bool
	frames         int
	phase          Phase
	restore        func()
}

func (s *session) snapshot() Session {
	return Session{
		ID:            s.id,
		ObjectID:      s.objectID,
		Offset:        s.offset,
		LastCandidate: s.last,
		Phase:         s.phase,
		Frames:        s.frames,
	}
}

// SessionHandle identifies the session returned by BeginDrag. Its methods
// are no-ops once that session is over, so stale handles are harmless.
type SessionHandle struct {
	id     uint64
	engine *Engine
}

// ID returns the session ID. IDs are unique per engine.
func (h SessionHandle) ID() uint64 {
	return h.id
}

// Active reports whether the session is still the engine's active session.
func (h SessionHandle) Active() bool {
	return h.engine != nil && h.engine.current(h.id) != nil
}

// End commits the session if it is still active.
func (h SessionHandle) End() {
	if h.Active() {
		h.engine.EndDrag()
	}
}

// Cancel cancels the session if it is still active.
func (h SessionHandle) Cancel() {
	if h.Active() {
		h.engine.Cancel()
	}
}
