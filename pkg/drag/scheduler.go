package drag

// ManualScheduler is a FrameScheduler driven by explicit Flush calls.
// It is useful for headless hosts and tests where "a frame" is whatever the
// caller decides it is.
type ManualScheduler struct {
	queue []func()
	frame uint64
}

// Ensure ManualScheduler implements FrameScheduler.
var _ FrameScheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame queues fn for the next Flush.
func (m *ManualScheduler) RequestFrame(fn func()) {
	m.queue = append(m.queue, fn)
}

// Flush runs one frame: every callback requested before the call, in
// request order. Callbacks requested while flushing wait for the next frame.
// Returns the number of callbacks run.
func (m *ManualScheduler) Flush() int {
	m.frame++
	queue := m.queue
	m.queue = nil
	for _, fn := range queue {
		fn()
	}
	return len(queue)
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *ManualScheduler) Pending() int {
	return len(m.queue)
}

// Frames returns the number of frames flushed so far.
func (m *ManualScheduler) Frames() uint64 {
	return m.frame
}
