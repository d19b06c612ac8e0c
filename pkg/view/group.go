package view

import "github.com/vango-dev/tessera/pkg/vdom"

// Fixed-arity groups concatenate heterogeneous members in declared order.
// NewGroupN constructs a GroupN; members are exported as V0, V1, and so on.

// Group2 is a group of 2 views.
type Group2[A, B View] struct {
	V0 A
	V1 B
}

// NewGroup2 creates a Group2.
func NewGroup2[A, B View](v0 A, v1 B) Group2[A, B] {
	return Group2[A, B]{v0, v1}
}

// Build implements View.
func (g Group2[A, B]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
}

// Group3 is a group of 3 views.
type Group3[A, B, C View] struct {
	V0 A
	V1 B
	V2 C
}

// NewGroup3 creates a Group3.
func NewGroup3[A, B, C View](v0 A, v1 B, v2 C) Group3[A, B, C] {
	return Group3[A, B, C]{v0, v1, v2}
}

// Build implements View.
func (g Group3[A, B, C]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
}

// Group4 is a group of 4 views.
type Group4[A, B, C, D View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// NewGroup4 creates a Group4.
func NewGroup4[A, B, C, D View](v0 A, v1 B, v2 C, v3 D) Group4[A, B, C, D] {
	return Group4[A, B, C, D]{v0, v1, v2, v3}
}

// Build implements View.
func (g Group4[A, B, C, D]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
}

// Group5 is a group of 5 views.
type Group5[A, B, C, D, E View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// NewGroup5 creates a Group5.
func NewGroup5[A, B, C, D, E View](v0 A, v1 B, v2 C, v3 D, v4 E) Group5[A, B, C, D, E] {
	return Group5[A, B, C, D, E]{v0, v1, v2, v3, v4}
}

// Build implements View.
func (g Group5[A, B, C, D, E]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
	buildInto(b, g.V4)
}

// Group6 is a group of 6 views.
type Group6[A, B, C, D, E, F View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

// NewGroup6 creates a Group6.
func NewGroup6[A, B, C, D, E, F View](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F) Group6[A, B, C, D, E, F] {
	return Group6[A, B, C, D, E, F]{v0, v1, v2, v3, v4, v5}
}

// Build implements View.
func (g Group6[A, B, C, D, E, F]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
	buildInto(b, g.V4)
	buildInto(b, g.V5)
}

// Group7 is a group of 7 views.
type Group7[A, B, C, D, E, F, G View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

// NewGroup7 creates a Group7.
func NewGroup7[A, B, C, D, E, F, G View](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G) Group7[A, B, C, D, E, F, G] {
	return Group7[A, B, C, D, E, F, G]{v0, v1, v2, v3, v4, v5, v6}
}

// Build implements View.
func (g Group7[A, B, C, D, E, F, G]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
	buildInto(b, g.V4)
	buildInto(b, g.V5)
	buildInto(b, g.V6)
}

// Group8 is a group of 8 views.
type Group8[A, B, C, D, E, F, G, H View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

// NewGroup8 creates a Group8.
func NewGroup8[A, B, C, D, E, F, G, H View](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G, v7 H) Group8[A, B, C, D, E, F, G, H] {
	return Group8[A, B, C, D, E, F, G, H]{v0, v1, v2, v3, v4, v5, v6, v7}
}

// Build implements View.
func (g Group8[A, B, C, D, E, F, G, H]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
	buildInto(b, g.V4)
	buildInto(b, g.V5)
	buildInto(b, g.V6)
	buildInto(b, g.V7)
}

// Group9 is a group of 9 views.
type Group9[A, B, C, D, E, F, G, H, I View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
}

// NewGroup9 creates a Group9.
func NewGroup9[A, B, C, D, E, F, G, H, I View](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G, v7 H, v8 I) Group9[A, B, C, D, E, F, G, H, I] {
	return Group9[A, B, C, D, E, F, G, H, I]{v0, v1, v2, v3, v4, v5, v6, v7, v8}
}

// Build implements View.
func (g Group9[A, B, C, D, E, F, G, H, I]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
	buildInto(b, g.V4)
	buildInto(b, g.V5)
	buildInto(b, g.V6)
	buildInto(b, g.V7)
	buildInto(b, g.V8)
}

// Group10 is a group of 10 views.
type Group10[A, B, C, D, E, F, G, H, I, J View] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
	V9 J
}

// NewGroup10 creates a Group10.
func NewGroup10[A, B, C, D, E, F, G, H, I, J View](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G, v7 H, v8 I, v9 J) Group10[A, B, C, D, E, F, G, H, I, J] {
	return Group10[A, B, C, D, E, F, G, H, I, J]{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9}
}

// Build implements View.
func (g Group10[A, B, C, D, E, F, G, H, I, J]) Build(b *vdom.Builder) {
	buildInto(b, g.V0)
	buildInto(b, g.V1)
	buildInto(b, g.V2)
	buildInto(b, g.V3)
	buildInto(b, g.V4)
	buildInto(b, g.V5)
	buildInto(b, g.V6)
	buildInto(b, g.V7)
	buildInto(b, g.V8)
	buildInto(b, g.V9)
}
