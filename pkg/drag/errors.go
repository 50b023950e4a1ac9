package drag

import "errors"

// Rejections returned by BeginDrag.
var (
	// ErrSessionActive is returned when a drag is started while another is
	// still in progress. Concurrent drags are not queued.
	ErrSessionActive = errors.New("drag: another session is active")

	// ErrUnknownObject is returned when the object to drag does not exist.
	ErrUnknownObject = errors.New("drag: unknown object")
)

// Conditions recovered inside the engine. They are never returned from
// UpdatePointer, EndDrag, Cancel or LoseCapture; they show up as the Reason
// of a Result and in logs.
var (
	// ErrInvalidSession marks an operation issued with no matching active
	// session. It resolves to a no-op.
	ErrInvalidSession = errors.New("drag: no active session")

	// ErrObjectVanished marks a session whose object was deleted mid-drag.
	// The session ends without writing.
	ErrObjectVanished = errors.New("drag: dragged object vanished")

	// ErrDegenerateBounds marks a frame where the object was larger than the
	// canvas and had to be pinned to the origin edge.
	ErrDegenerateBounds = errors.New("drag: object larger than canvas")

	// ErrCancelled marks a session ended by Cancel.
	ErrCancelled = errors.New("drag: session cancelled")
)
