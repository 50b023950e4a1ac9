// Package drag implements direct manipulation of freely positioned objects
// on a bounded canvas.
//
// An Engine owns at most one drag session at a time. A session is created by
// BeginDrag, fed pointer positions by UpdatePointer, and finished by EndDrag
// (commit), LoseCapture (commit) or Cancel (no write):
//
//	idle -> armed -> active -> settling -> idle
//
// Pointer positions arrive in screen coordinates and are converted to
// canvas-local coordinates against a freshly queried canvas rectangle on
// every frame. Bursts of UpdatePointer calls are coalesced: the engine asks
// its FrameScheduler for at most one frame per burst and only the latest
// pointer is honoured when that frame runs.
//
// The engine never owns objects. It reads them through an Environment and
// writes the final position exactly once per completed session through
// Environment.CommitPosition. While a session is active the in-flight
// position is published through an optional VisualOverride and is cleared
// after the commit so the store-driven rendering takes over with the same
// value.
//
// Thread Safety Rules:
//   - An Engine is confined to the host's event loop goroutine, like
//     tui.State.Set. Use the host's QueueUpdate to reach it from elsewhere.
//   - Callbacks handed to FrameScheduler.RequestFrame must run on that same
//     goroutine.
//
// Example usage:
//
//	eng, err := drag.New(env, app, drag.WithVisualOverride(overrides))
//	if err != nil {
//	    return err
//	}
//	if _, err := eng.BeginDrag(id, drag.Point{X: 12, Y: 4}); err != nil {
//	    return nil // rejected: already dragging or unknown object
//	}
//	eng.UpdatePointer(drag.Point{X: 30, Y: 9})
//	eng.EndDrag()
package drag
