package drag

import (
	"fmt"
	"log/slog"
)

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithVisualOverride publishes in-drag positions to v.
func WithVisualOverride(v VisualOverride) Option {
	return func(e *Engine) error {
		e.override = v
		return nil
	}
}

// WithPointerCapture captures the pointer for the lifetime of each session.
func WithPointerCapture(c PointerCapture) Option {
	return func(e *Engine) error {
		e.capture = c
		return nil
	}
}

// WithInteractionGuard suppresses host interactions while a session is active.
func WithInteractionGuard(g InteractionGuard) Option {
	return func(e *Engine) error {
		e.guard = g
		return nil
	}
}

// WithSelector selects the grabbed object when a session begins.
func WithSelector(s Selector) Option {
	return func(e *Engine) error {
		e.selector = s
		return nil
	}
}

// WithSnapGrid snaps candidate positions to multiples of grid before
// clamping. A grid of 0 disables snapping.
func WithSnapGrid(grid float64) Option {
	return func(e *Engine) error {
		if grid < 0 || !finite(grid) {
			return fmt.Errorf("snap grid must be a finite value >= 0, got %v", grid)
		}
		e.grid = grid
		return nil
	}
}

// WithLimits narrows or widens the per-axis range a dragged object may take.
func WithLimits(l Limits) Option {
	return func(e *Engine) error {
		e.limits = l
		return nil
	}
}

// WithLogger sets the logger. Default is debug.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		e.logger = l
		return nil
	}
}

// WithMetrics records engine activity into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) error {
		e.metrics = m
		return nil
	}
}

// WithOnSettle registers a callback invoked after every session finishes,
// whatever its outcome.
func WithOnSettle(fn func(Result)) Option {
	return func(e *Engine) error {
		e.onSettle = fn
		return nil
	}
}
