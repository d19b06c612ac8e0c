package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for live sessions.
//
// Metrics collected:
//   - <ns>_live_sessions_active: open sessions
//   - <ns>_live_frames_sent_total: frames written, by type
//   - <ns>_live_bytes_sent_total: encoded bytes written
//   - <ns>_live_events_total: client events, by result
type Metrics struct {
	sessions  prometheus.Gauge
	frames    *prometheus.CounterVec
	bytesSent prometheus.Counter
	events    *prometheus.CounterVec
}

// NewMetrics creates and registers live session metrics on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "sessions_active",
			Help:      "Number of open live sessions",
		}),
		frames: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "frames_sent_total",
			Help:      "Total number of frames sent to clients",
		}, []string{"type"}),
		bytesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "bytes_sent_total",
			Help:      "Total number of frame bytes sent to clients",
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "events_total",
			Help:      "Total number of client events by result",
		}, []string{"result"}),
	}
}

// Event results.
const (
	resultHandled  = "handled"
	resultNotFound = "not_found"
	resultPanic    = "panic"
	resultDropped  = "dropped"
)

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.sessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.sessions.Dec()
	}
}

func (m *Metrics) frameSent(t string, n int) {
	if m == nil {
		return
	}
	m.frames.WithLabelValues(t).Inc()
	m.bytesSent.Add(float64(n))
}

func (m *Metrics) event(result string) {
	if m != nil {
		m.events.WithLabelValues(result).Inc()
	}
}
