package term

import (
	"context"
	"time"
)

// Run sets up the terminal and runs the main loop until Stop is called or
// ctx is done. The terminal is restored before Run returns.
//
// Each frame processes queued input for up to half the frame budget, then
// runs RunFrame, then sleeps out the rest of the frame.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.setup(); err != nil {
		return err
	}
	defer func() {
		if rerr := a.restore(); err == nil {
			err = rerr
		}
	}()

	go a.readInputEvents()

	for {
		frameStart := time.Now()

		eventDeadline := frameStart.Add(a.frameDuration / 2)
	events:
		for time.Now().Before(eventDeadline) {
			select {
			case fn := <-a.eventQueue:
				fn()
			case <-a.stopCh:
				return nil
			case <-ctx.Done():
				a.Stop()
				return nil
			default:
				break events
			}
		}

		a.RunFrame()

		if elapsed := time.Since(frameStart); elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			case <-ctx.Done():
				a.Stop()
				return nil
			}
		}
	}
}

// Stop makes Run return. Safe to call more than once and from any goroutine.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
}

// QueueUpdate runs fn on the main loop. Safe from any goroutine. Updates
// are dropped once the app stops or if the queue is full.
func (a *App) QueueUpdate(fn func()) bool {
	select {
	case <-a.stopCh:
		return false
	default:
	}
	select {
	case a.eventQueue <- fn:
		return true
	case <-a.stopCh:
		return false
	default:
		return false
	}
}

// readInputEvents polls the reader and queues each event for the main loop.
func (a *App) readInputEvents() {
	for {
		select {
		case <-a.stopCh:
			return
		default:
		}

		ev, ok := a.reader.PollEvent(a.inputLatency)
		if !ok {
			continue
		}
		select {
		case a.eventQueue <- func() { a.Dispatch(ev) }:
		case <-a.stopCh:
			return
		}
	}
}
