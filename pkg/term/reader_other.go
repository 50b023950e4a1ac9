//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package term

import "os"

// NewEventReader is not available on this platform.
func NewEventReader(*os.File) (EventReader, error) {
	return nil, errUnsupported
}
