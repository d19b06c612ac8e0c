package view

import "github.com/vango-dev/tessera/pkg/vdom"

// Either contributes exactly one of two branches, chosen when the value is
// constructed. The other branch is never built.
type Either[A, B View] struct {
	first    A
	second   B
	useFirst bool
}

// First selects the first branch.
func First[A, B View](a A) Either[A, B] {
	return Either[A, B]{first: a, useFirst: true}
}

// Second selects the second branch.
func Second[A, B View](b B) Either[A, B] {
	return Either[A, B]{second: b}
}

// IfElse selects a when condition is true, b otherwise.
func IfElse[A, B View](condition bool, a A, b B) Either[A, B] {
	if condition {
		return First[A, B](a)
	}
	return Second[A](b)
}

// WhenElse is like IfElse but only constructs the chosen branch.
func WhenElse[A, B View](condition bool, a func() A, b func() B) Either[A, B] {
	if condition {
		return First[A, B](a())
	}
	return Second[A](b())
}

// IsFirst reports whether the first branch is selected.
func (e Either[A, B]) IsFirst() bool {
	return e.useFirst
}

// Build implements View.
func (e Either[A, B]) Build(b *vdom.Builder) {
	if e.useFirst {
		buildInto(b, e.first)
		return
	}
	buildInto(b, e.second)
}
