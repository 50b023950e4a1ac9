//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package term

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd    int
	buf   []byte
	dec   decoder
	sigCh chan os.Signal
}

// NewEventReader creates an EventReader for in, which should already be in
// raw mode. Window size changes arrive as ResizeEvent.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

// PollEvent returns the next event, waiting up to timeout for input.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := r.dec.next(); ok {
		return ev, true
	}

	select {
	case <-r.sigCh:
		w, h, err := terminalSize(r.fd)
		if err != nil {
			w, h = 80, 24
		}
		return ResizeEvent{Width: w, Height: h}, true
	default:
	}

	ready, err := selectWithTimeout(r.fd, r.dec.wait(timeout))
	if err != nil {
		return nil, false
	}
	if !ready {
		r.dec.expire()
		return r.dec.next()
	}
	n, err := syscall.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}
	r.dec.feed(r.buf[:n])
	return r.dec.next()
}

// Close stops resize notifications.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	return nil
}

// selectWithTimeout reports whether fd becomes readable within timeout.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}
	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when SIGWINCH arrives.
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
