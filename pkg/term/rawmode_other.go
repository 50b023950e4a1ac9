//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package term

import "errors"

var errUnsupported = errors.New("term: platform not supported")

type rawModeState struct{}

func enableRawMode(int) (*rawModeState, error) { return nil, errUnsupported }

func disableRawMode(int, *rawModeState) error { return nil }

func terminalSize(int) (width, height int, err error) { return 0, 0, errUnsupported }
