// Package debug provides optional file-based debug logging.
//
// When the DESIGNER_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as JSON lines. Otherwise, logging is a
// no-op. Init can be called explicitly to pick a path at startup.
package debug
