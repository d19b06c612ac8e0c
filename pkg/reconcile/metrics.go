package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures reconciler metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tessera").
	Namespace string

	// Subsystem is the metrics subsystem (default: "reconcile").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for call duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures reconciler metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "tessera",
		Subsystem: "reconcile",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors updated by a Reconciler.
//
// Metrics collected:
//   - tessera_reconcile_calls_total: calls by operation (mount, reconcile, children)
//   - tessera_reconcile_duration_seconds: call duration by operation
//   - tessera_reconcile_mutations_total: host mutations by kind
//   - tessera_reconcile_nodes_visited_total: node pairs compared
type Metrics struct {
	calls     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	mutations *prometheus.CounterVec
	visited   prometheus.Counter
}

// NewMetrics creates and registers reconciler metrics.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "calls_total",
			Help:        "Total number of mount and reconcile calls",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duration_seconds",
			Help:        "Mount and reconcile duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"op"}),

		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mutations_total",
			Help:        "Total number of host mutations by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		visited: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_visited_total",
			Help:        "Total number of node pairs compared",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// observe records one call.
func (m *Metrics) observe(op string, seconds float64, s Stats) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(op).Inc()
	m.duration.WithLabelValues(op).Observe(seconds)
	m.visited.Add(float64(s.Visited))

	add := func(kind string, n int) {
		if n > 0 {
			m.mutations.WithLabelValues(kind).Add(float64(n))
		}
	}
	add("create", s.Created)
	add("replace", s.Replaced)
	add("set_attribute", s.AttributesSet)
	add("add_listener", s.ListenersAdded)
	add("append", s.Appended)
}
