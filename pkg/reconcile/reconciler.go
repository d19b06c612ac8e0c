package reconcile

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tessera/pkg/vdom"
)

// Default tracer name for reconciler spans.
const defaultTracerName = "tessera"

// Operation names used for spans, logs and metric labels.
const (
	opMount     = "mount"
	opReconcile = "reconcile"
	opChildren  = "children"
)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Reconciler.
type Option func(*options)

// WithLogger sets the logger. Calls are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records every call on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer sets the tracer used for call spans.
// Default: otel.Tracer("tessera") from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// Result is the outcome of a Reconciler call.
type Result[N any] struct {
	// Node is the live node representing the new tree.
	Node N

	// Stats counts the host calls made.
	Stats Stats
}

// Reconciler drives a host with logging, metrics and tracing around the
// package-level algorithm.
//
// A Reconciler holds no per-call state, but calls that touch the same live
// tree must be serialized by the caller.
type Reconciler[N any] struct {
	host Host[N]
	opts options
}

// New creates a Reconciler for host.
func New[N any](host Host[N], opts ...Option) *Reconciler[N] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(defaultTracerName)
	}
	return &Reconciler[N]{host: host, opts: o}
}

// Host returns the host this Reconciler drives.
func (r *Reconciler[N]) Host() Host[N] {
	return r.host
}

// Mount renders n fresh.
func (r *Reconciler[N]) Mount(ctx context.Context, n *vdom.Node) Result[N] {
	p := &patcher[N]{host: r.host}
	var node N
	r.run(ctx, opMount, n.Count(), func() {
		node = p.mount(n)
	}, &p.stats)
	return Result[N]{Node: node, Stats: p.stats}
}

// Reconcile patches live from prev to next.
func (r *Reconciler[N]) Reconcile(ctx context.Context, prev, next *vdom.Node, live N) Result[N] {
	p := &patcher[N]{host: r.host}
	node := live
	r.run(ctx, opReconcile, prev.Count()+next.Count(), func() {
		node = p.reconcile(prev, next, live)
	}, &p.stats)
	return Result[N]{Node: node, Stats: p.stats}
}

// ReconcileChildren patches the children of parent from prev to next.
func (r *Reconciler[N]) ReconcileChildren(ctx context.Context, prev, next []*vdom.Node, parent N) Stats {
	p := &patcher[N]{host: r.host}
	r.run(ctx, opChildren, seqCount(prev)+seqCount(next), func() {
		p.children(prev, next, parent)
	}, &p.stats)
	return p.stats
}

// run wraps fn in a span, a metrics observation and a debug log line.
func (r *Reconciler[N]) run(ctx context.Context, op string, nodes int, fn func(), stats *Stats) {
	_, span := r.opts.tracer.Start(ctx, "tessera."+op,
		trace.WithAttributes(
			attribute.String("tessera.op", op),
			attribute.Int("tessera.nodes", nodes),
		),
	)
	defer span.End()

	start := time.Now()
	fn()
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.Int("tessera.visited", stats.Visited),
		attribute.Int("tessera.mutations", stats.Mutations()),
		attribute.Int("tessera.replaced", stats.Replaced),
	)
	r.opts.metrics.observe(op, elapsed.Seconds(), *stats)
	r.opts.logger.Debug("reconcile",
		"op", op,
		"nodes", nodes,
		"mutations", stats.Mutations(),
		"replaced", stats.Replaced,
		"duration", elapsed,
	)
}

func seqCount(nodes []*vdom.Node) int {
	total := 0
	for _, n := range nodes {
		total += n.Count()
	}
	return total
}
