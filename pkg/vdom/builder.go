package vdom

import "fmt"

// Innermost is a Contribution depth that follows last children down to the
// deepest element whose last child is not itself an element.
const Innermost = -1

// ContributionKind distinguishes attribute and listener contributions.
type ContributionKind uint8

const (
	ContributeAttr   ContributionKind = iota // Concatenated into an attribute
	ContributeListen                         // Appended to an event's handlers
)

// Contribution is a single attribute or listener merge.
//
// Depth scopes the merge: 0 targets the node itself, n > 0 descends n times
// into the last child, Innermost descends as far as elements allow.
type Contribution struct {
	Kind    ContributionKind
	Key     string
	Value   string
	Handler Handler
	Depth   int
}

// Attr returns an attribute contribution.
func Attr(key, value string) Contribution {
	return Contribution{Kind: ContributeAttr, Key: key, Value: value}
}

// Listen returns a listener contribution.
func Listen(event string, h Handler) Contribution {
	return Contribution{Kind: ContributeListen, Key: event, Handler: h}
}

// At returns c scoped to the given depth.
func (c Contribution) At(depth int) Contribution {
	c.Depth = depth
	return c
}

// ApplyTo merges c into n. Non-element targets are left unchanged.
func (c Contribution) ApplyTo(n *Node) {
	target := descend(n, c.Depth)
	if !target.IsElement() {
		return
	}
	switch c.Kind {
	case ContributeAttr:
		if target.Attrs == nil {
			target.Attrs = &Attributes{}
		}
		target.Attrs.Merge(c.Key, c.Value)
	case ContributeListen:
		if c.Handler == nil {
			return
		}
		if target.Listeners == nil {
			target.Listeners = &Listeners{}
		}
		target.Listeners.Add(c.Key, c.Handler)
	}
}

func descend(n *Node, depth int) *Node {
	for depth != 0 {
		last := n.LastChild()
		if last == nil || !last.IsElement() {
			return n
		}
		n = last
		if depth > 0 {
			depth--
		}
	}
	return n
}

// Cursor names a position in a Builder's sequence.
type Cursor int

// Builder accumulates an ordered sequence of render nodes.
//
// A Builder belongs to a single composition run. Nodes hands the sequence
// off and seals the builder; any later mutation panics.
type Builder struct {
	nodes  []*Node
	sealed bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of nodes appended so far.
func (b *Builder) Len() int {
	return len(b.nodes)
}

// Append adds n to the end of the sequence.
func (b *Builder) Append(n *Node) Cursor {
	b.mustBeOpen("Append")
	b.nodes = append(b.nodes, n)
	return Cursor(len(b.nodes) - 1)
}

// Extend appends every node in order.
func (b *Builder) Extend(nodes ...*Node) {
	b.mustBeOpen("Extend")
	b.nodes = append(b.nodes, nodes...)
}

// Last returns the cursor of the most recently appended node.
func (b *Builder) Last() (Cursor, bool) {
	if len(b.nodes) == 0 {
		return 0, false
	}
	return Cursor(len(b.nodes) - 1), true
}

// At returns the node at cur.
func (b *Builder) At(cur Cursor) *Node {
	return b.nodes[cur]
}

// MergeIntoLast applies c to the most recently appended node.
// Merging with no preceding node is an integration error and panics.
func (b *Builder) MergeIntoLast(c Contribution) {
	cur, ok := b.Last()
	if !ok {
		panic("vdom: MergeIntoLast with no preceding node")
	}
	b.MergeAt(cur, c)
}

// MergeAt applies c to the node at cur.
func (b *Builder) MergeAt(cur Cursor, c Contribution) {
	b.mustBeOpen("MergeAt")
	if int(cur) < 0 || int(cur) >= len(b.nodes) {
		panic(fmt.Sprintf("vdom: cursor %d out of range [0,%d)", cur, len(b.nodes)))
	}
	c.ApplyTo(b.nodes[cur])
}

// MergeIntoAll applies c to every node in the sequence.
func (b *Builder) MergeIntoAll(c Contribution) {
	b.mustBeOpen("MergeIntoAll")
	for _, n := range b.nodes {
		c.ApplyTo(n)
	}
}

// Nodes hands off the built sequence and seals the builder.
func (b *Builder) Nodes() []*Node {
	b.sealed = true
	return b.nodes
}

func (b *Builder) mustBeOpen(op string) {
	if b.sealed {
		panic("vdom: " + op + " on sealed builder")
	}
}
