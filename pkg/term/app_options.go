package term

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate. Default is 60 fps. Valid range
// is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithInputLatency sets the polling timeout for the event reader.
// Default is 50ms. Zero would busy-poll and is rejected.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("input latency must be positive, got %s", d)
		}
		a.inputLatency = d
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue. Default is 256.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithMouseMode sets the mouse mode used when the app starts. Default is
// MouseButtons.
func WithMouseMode(mode MouseMode) AppOption {
	return func(a *App) error {
		if mode < MouseOff || mode > MouseAllMotion {
			return fmt.Errorf("unknown mouse mode %d", mode)
		}
		a.mouse = mode
		return nil
	}
}

// WithoutFocusReporting leaves focus in/out reports disabled.
func WithoutFocusReporting() AppOption {
	return func(a *App) error {
		a.focusReporting = false
		return nil
	}
}

// WithoutAltScreen draws on the main screen buffer.
func WithoutAltScreen() AppOption {
	return func(a *App) error {
		a.altScreen = false
		return nil
	}
}
