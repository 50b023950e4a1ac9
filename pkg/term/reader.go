package term

import "time"

// EventReader reads input events.
type EventReader interface {
	// PollEvent waits up to timeout for the next event. A negative timeout
	// blocks. Returns false on timeout.
	PollEvent(timeout time.Duration) (Event, bool)
	Close() error
}

// decoder buffers parsed events and bytes of unfinished sequences between
// reads.
type decoder struct {
	partial []byte
	pending []Event
}

// feed parses data, prepending any unfinished bytes from the last call.
func (d *decoder) feed(data []byte) {
	if len(d.partial) > 0 {
		data = append(d.partial, data...)
		d.partial = nil
	}
	events, rest := parseInput(data)
	if len(rest) > 0 {
		d.partial = append([]byte(nil), rest...)
	}
	d.pending = append(d.pending, events...)
}

// escapeTimeout is how long a lone ESC waits for the rest of a sequence
// before it is reported as the Escape key.
const escapeTimeout = 25 * time.Millisecond

// heldEscape reports whether the only buffered byte is a lone ESC.
func (d *decoder) heldEscape() bool {
	return len(d.partial) == 1 && d.partial[0] == 0x1b
}

// wait bounds a read timeout so that a held ESC is not kept past
// escapeTimeout.
func (d *decoder) wait(timeout time.Duration) time.Duration {
	if d.heldEscape() && (timeout < 0 || timeout > escapeTimeout) {
		return escapeTimeout
	}
	return timeout
}

// expire reports a held ESC as the Escape key. Call it when a read with
// the timeout from wait found no input.
func (d *decoder) expire() {
	if d.heldEscape() {
		d.partial = nil
		d.pending = append(d.pending, KeyEvent{Key: KeyEscape})
	}
}

// next pops the oldest parsed event.
func (d *decoder) next() (Event, bool) {
	if len(d.pending) == 0 {
		return nil, false
	}
	ev := d.pending[0]
	d.pending = d.pending[1:]
	return ev, true
}
