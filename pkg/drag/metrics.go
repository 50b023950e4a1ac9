package drag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	SessionsTotal    *prometheus.CounterVec
	ActiveSessions   prometheus.Gauge
	FramesTotal      prometheus.Counter
	PointerUpdates   prometheus.Counter
	CoalescedUpdates prometheus.Counter
	DegenerateClamps prometheus.Counter
	SessionFrames    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SessionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "sessions_total",
			Help:      "Drag sessions by outcome (committed, cancelled, vanished, rejected)",
		}, []string{"outcome"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "active_sessions",
			Help:      "Number of drag sessions currently active (0 or 1)",
		}),
		FramesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "frames_total",
			Help:      "Frames that recomputed a dragged object's position",
		}),
		PointerUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "pointer_updates_total",
			Help:      "Pointer positions received during active sessions",
		}),
		CoalescedUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "coalesced_updates_total",
			Help:      "Pointer positions folded into an already scheduled frame",
		}),
		DegenerateClamps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "degenerate_clamps_total",
			Help:      "Frames where the dragged object was larger than the canvas",
		}),
		SessionFrames: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "designer",
			Subsystem: "drag",
			Name:      "session_frames",
			Help:      "Frames applied per finished session",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

func (m *Metrics) sessionStarted() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) sessionRejected() {
	if m == nil {
		return
	}
	m.SessionsTotal.WithLabelValues("rejected").Inc()
}

func (m *Metrics) sessionFinished(outcome Outcome, frames int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
	m.SessionsTotal.WithLabelValues(outcome.String()).Inc()
	m.SessionFrames.Observe(float64(frames))
}

func (m *Metrics) pointerUpdate(coalesced bool) {
	if m == nil {
		return
	}
	m.PointerUpdates.Inc()
	if coalesced {
		m.CoalescedUpdates.Inc()
	}
}

func (m *Metrics) frame(degenerate bool) {
	if m == nil {
		return
	}
	m.FramesTotal.Inc()
	if degenerate {
		m.DegenerateClamps.Inc()
	}
}
