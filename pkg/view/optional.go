package view

import "github.com/vango-dev/tessera/pkg/vdom"

// Optional contributes its value when present and nothing otherwise.
// An absent Optional never leaves a placeholder node.
type Optional[V View] struct {
	value   V
	present bool
}

// Some returns a present Optional.
func Some[V View](v V) Optional[V] {
	return Optional[V]{value: v, present: true}
}

// None returns an absent Optional.
func None[V View]() Optional[V] {
	return Optional[V]{}
}

// If returns v when condition is true and an absent Optional otherwise.
func If[V View](condition bool, v V) Optional[V] {
	if condition {
		return Some(v)
	}
	return None[V]()
}

// When is like If but only calls fn when condition is true.
func When[V View](condition bool, fn func() V) Optional[V] {
	if condition {
		return Some(fn())
	}
	return None[V]()
}

// Present reports whether the Optional holds a value.
func (o Optional[V]) Present() bool {
	return o.present
}

// Get returns the value and whether it is present.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

// Build implements View.
func (o Optional[V]) Build(b *vdom.Builder) {
	if o.present {
		buildInto(b, o.value)
	}
}
