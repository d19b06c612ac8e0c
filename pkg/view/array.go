package view

import "github.com/vango-dev/tessera/pkg/vdom"

// Array contributes each element's nodes in order. Its length may change
// from one composition run to the next.
type Array[V View] []V

// Build implements View.
func (a Array[V]) Build(b *vdom.Builder) {
	for _, v := range a {
		buildInto(b, v)
	}
}

// Fragment groups views of any type without a wrapper element.
func Fragment(views ...View) Array[View] {
	return Array[View](views)
}

// ForEach maps items to views, preserving item order.
func ForEach[T any, V View](items []T, fn func(item T, index int) V) Array[V] {
	out := make(Array[V], 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat creates n views using fn.
func Repeat[V View](n int, fn func(i int) V) Array[V] {
	if n <= 0 {
		return nil
	}
	out := make(Array[V], 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}
