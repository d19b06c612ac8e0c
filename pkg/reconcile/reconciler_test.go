package reconcile

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/vango-dev/tessera/pkg/host/memhost"
	"github.com/vango-dev/tessera/pkg/vdom"
	"github.com/vango-dev/tessera/pkg/view"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func newTestReconciler(t *testing.T, h *memhost.Host) (*Reconciler[*memhost.Node], *Metrics, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	return New[*memhost.Node](h, WithLogger(logger), WithMetrics(m)), m, &logs
}

func TestReconcilerMountStats(t *testing.T) {
	h := memhost.New("body")
	r, m, logs := newTestReconciler(t, h)
	if r.Host() == nil {
		t.Fatal("Host() = nil")
	}

	tree := view.BuildRoot(view.Modify(
		view.El("div", view.Text("a"), view.El("span")),
		view.ID("x"),
		view.On("click", func(vdom.Event) {}),
	))
	res := r.Mount(context.Background(), tree)

	want := Stats{Created: 3, AttributesSet: 1, ListenersAdded: 1, Appended: 2}
	if res.Stats != want {
		t.Errorf("Stats = %+v, want %+v", res.Stats, want)
	}
	if res.Node.Tag() != "div" {
		t.Errorf("Node = %v", res.Node.Tag())
	}
	if got := metricCounterValue(t, m.calls.WithLabelValues(opMount)); got != 1 {
		t.Errorf("mount calls = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.mutations.WithLabelValues("create")); got != 3 {
		t.Errorf("create mutations = %v, want 3", got)
	}
	if !strings.Contains(logs.String(), "op=mount") {
		t.Errorf("expected debug log for mount, got %q", logs.String())
	}
}

func TestReconcilerReconcileStats(t *testing.T) {
	h := memhost.New("body")
	r, m, _ := newTestReconciler(t, h)
	ctx := context.Background()

	prev := view.BuildRoot(view.El("ul", view.El("li", view.Text("a"))))
	live := r.Mount(ctx, prev).Node
	h.AppendChild(h.Root(), live)

	next := view.BuildRoot(view.Modify(view.El("ul", view.El("li", view.Text("b")), view.El("li")), view.Class("x")))
	res := r.Reconcile(ctx, prev, next, live)

	if res.Node != live {
		t.Error("root should be reused")
	}
	want := Stats{Visited: 3, Created: 2, Replaced: 1, AttributesSet: 1, Appended: 1}
	if res.Stats != want {
		t.Errorf("Stats = %+v, want %+v", res.Stats, want)
	}
	if res.Stats.Mutations() != 5 {
		t.Errorf("Mutations() = %d, want 5", res.Stats.Mutations())
	}
	if got := metricCounterValue(t, m.visited); got != 3 {
		t.Errorf("visited = %v, want 3", got)
	}
	if got := metricCounterValue(t, m.mutations.WithLabelValues("replace")); got != 1 {
		t.Errorf("replace mutations = %v, want 1", got)
	}
}

func TestReconcilerNoopRecordsNoMutations(t *testing.T) {
	h := memhost.New("body")
	r, m, _ := newTestReconciler(t, h)
	ctx := context.Background()

	tree := view.BuildRoot(view.El("p", view.Text("same")))
	live := r.Mount(ctx, tree).Node

	res := r.Reconcile(ctx, tree, tree, live)
	if res.Stats.Mutations() != 0 {
		t.Errorf("Mutations() = %d, want 0", res.Stats.Mutations())
	}
	if got := metricCounterValue(t, m.calls.WithLabelValues(opReconcile)); got != 1 {
		t.Errorf("reconcile calls = %v, want 1", got)
	}
}

func TestReconcilerChildren(t *testing.T) {
	h := memhost.New("body")
	r := New[*memhost.Node](h)
	ctx := context.Background()

	next := view.Build(view.Fragment(view.Text("a"), view.Text("b")))
	stats := r.ReconcileChildren(ctx, nil, next, h.Root())

	if stats.Appended != 2 || stats.Created != 2 {
		t.Errorf("Stats = %+v", stats)
	}
	if got := memhost.HTML(h.Root()); got != "<body>ab</body>" {
		t.Errorf("HTML() = %s", got)
	}
}

func TestStatsAddAndString(t *testing.T) {
	a := Stats{Visited: 1, Created: 2, Replaced: 3, AttributesSet: 4, ListenersAdded: 5, Appended: 6}
	sum := a.Add(a)
	if sum.Appended != 12 || sum.Visited != 2 {
		t.Errorf("Add() = %+v", sum)
	}
	want := "visited=1 created=2 replaced=3 attrs=4 listeners=5 appended=6"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNilMetricsObserve(t *testing.T) {
	var m *Metrics
	m.observe(opMount, 0.1, Stats{Created: 1})
}
