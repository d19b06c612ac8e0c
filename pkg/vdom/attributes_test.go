package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributesMergeConcatenates(t *testing.T) {
	var a Attributes
	a.Merge("k", "a")
	a.Merge("k", "b")

	got, ok := a.Get("k")
	if !ok {
		t.Fatal("key missing after merge")
	}
	if got != "ab" {
		t.Errorf("Get(k) = %q, want %q", got, "ab")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestAttributesInsertionOrder(t *testing.T) {
	var a Attributes
	a.Merge("id", "main")
	a.Merge("class", "card ")
	a.Merge("id", "-x")
	a.Merge("style", "color:red;")

	if diff := cmp.Diff([]string{"id", "class", "style"}, a.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	var pairs [][2]string
	a.Each(func(k, v string) { pairs = append(pairs, [2]string{k, v}) })
	want := [][2]string{{"id", "main-x"}, {"class", "card "}, {"style", "color:red;"}}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Errorf("Each() mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesNilSafe(t *testing.T) {
	var a *Attributes
	if a.Len() != 0 || a.Has("x") || a.Keys() != nil {
		t.Error("nil Attributes should read as empty")
	}
	a.Each(func(string, string) { t.Error("Each on nil should not call fn") })
}

func TestListenersOrder(t *testing.T) {
	var got []string
	var l Listeners
	l.Add("click", func(Event) { got = append(got, "h1") })
	l.Add("input", func(Event) { got = append(got, "input") })
	l.Add("click", func(Event) { got = append(got, "h2") })

	if diff := cmp.Diff([]string{"click", "input"}, l.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	if n := l.Dispatch(Event{Name: "click"}); n != 2 {
		t.Errorf("Dispatch() = %d, want 2", n)
	}
	if diff := cmp.Diff([]string{"h1", "h2"}, got); diff != "" {
		t.Errorf("handler order mismatch (-want +got):\n%s", diff)
	}
}

func TestListenersDispatchPayload(t *testing.T) {
	var seen Event
	var l Listeners
	l.Add("input", func(ev Event) { seen = ev })

	l.Dispatch(Event{Name: "input", Payload: "hello"})
	if seen.Payload != "hello" {
		t.Errorf("Payload = %q, want hello", seen.Payload)
	}
	if n := l.Dispatch(Event{Name: "missing"}); n != 0 {
		t.Errorf("Dispatch(missing) = %d, want 0", n)
	}
}

func TestListenersNilSafe(t *testing.T) {
	var l *Listeners
	if l.Len() != 0 || l.Has("click") || l.Names() != nil {
		t.Error("nil Listeners should read as empty")
	}
	if n := l.Dispatch(Event{Name: "click"}); n != 0 {
		t.Errorf("Dispatch() = %d, want 0", n)
	}
}
