// Package canvas holds the designer's authoritative state: the ordered list
// of placed components, the current selection, and the size of each
// component kind.
//
// Document follows the same rules as tui.State:
//   - Reads (Get, Components, Selected) are safe from any goroutine.
//   - Mutations must happen on the main event loop.
//   - Listeners registered with Subscribe run synchronously after each
//     mutation, or once per (change, component) at the end of a Batch.
//
// A drag engine talks to a Document through Environment, which is the only
// path that writes a position at the end of a drag.
package canvas
