//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	termios unix.Termios
}

// enableRawMode puts fd into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	if fd < 0 {
		return nil, fmt.Errorf("raw mode: input is not a terminal")
	}
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	state := &rawModeState{termios: *termios}

	// No echo, byte-at-a-time input, no signal keys (Ctrl+C arrives as a key).
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return state, nil
}

// disableRawMode restores the state saved by enableRawMode.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios)
}

// terminalSize returns the size of the terminal on fd.
func terminalSize(fd int) (width, height int, err error) {
	if fd < 0 {
		return 0, 0, fmt.Errorf("terminal size: not a terminal")
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
