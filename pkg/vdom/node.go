package vdom

import (
	"fmt"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
	KindRawText             // Text inserted without escaping
	KindComment             // <!-- comment -->
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRawText:
		return "RawText"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is a render node.
//
// Tag, Attrs, Listeners and Children are used by KindElement only; Text is
// used by the three text-like kinds. A node handed off by a Builder must not
// be mutated.
type Node struct {
	Kind      Kind
	Tag       string
	Attrs     *Attributes
	Listeners *Listeners
	Children  []*Node
	Text      string
}

// Element creates an element node with no attributes or children.
func Element(tag string) *Node {
	return &Node{
		Kind:      KindElement,
		Tag:       tag,
		Attrs:     &Attributes{},
		Listeners: &Listeners{},
	}
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// RawText creates a raw text node.
// Use with caution - hosts that serialize to markup emit it verbatim.
func RawText(content string) *Node {
	return &Node{Kind: KindRawText, Text: content}
}

// Comment creates a comment node.
func Comment(content string) *Node {
	return &Node{Kind: KindComment, Text: content}
}

// IsElement reports whether n is an element.
func (n *Node) IsElement() bool {
	return n != nil && n.Kind == KindElement
}

// IsTextLike reports whether n carries only text content.
func (n *Node) IsTextLike() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case KindText, KindRawText, KindComment:
		return true
	}
	return false
}

// LastChild returns the last child of an element, or nil.
func (n *Node) LastChild() *Node {
	if !n.IsElement() || len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Dispatch delivers ev to the node's listeners and returns how many
// handlers ran.
func (n *Node) Dispatch(ev Event) int {
	if !n.IsElement() {
		return 0
	}
	return n.Listeners.Dispatch(ev)
}

// Clone returns a deep copy of the tree rooted at n. Handlers are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Tag: n.Tag, Text: n.Text}
	if n.Kind == KindElement {
		out.Attrs = n.Attrs.clone()
		out.Listeners = n.Listeners.clone()
		if len(n.Children) > 0 {
			out.Children = make([]*Node, len(n.Children))
			for i, c := range n.Children {
				out.Children[i] = c.Clone()
			}
		}
	}
	return out
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// String returns a compact debug form of the tree.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	switch n.Kind {
	case KindText:
		fmt.Fprintf(sb, "%q", n.Text)
	case KindRawText:
		fmt.Fprintf(sb, "raw(%q)", n.Text)
	case KindComment:
		fmt.Fprintf(sb, "comment(%q)", n.Text)
	case KindElement:
		sb.WriteString(n.Tag)
		if n.Attrs.Len() > 0 || n.Listeners.Len() > 0 {
			sb.WriteByte('[')
			first := true
			n.Attrs.Each(func(k, v string) {
				if !first {
					sb.WriteByte(' ')
				}
				first = false
				fmt.Fprintf(sb, "%s=%q", k, v)
			})
			n.Listeners.Each(func(name string, hs []Handler) {
				if !first {
					sb.WriteByte(' ')
				}
				first = false
				fmt.Fprintf(sb, "on%s*%d", name, len(hs))
			})
			sb.WriteByte(']')
		}
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.writeTo(sb)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString("?")
	}
}

// Equal reports whether two trees are structurally equal: same kinds, tags,
// text, attributes in order, listener names with the same handler counts,
// and pairwise equal children. Handlers are compared by count only.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind != KindElement {
		return a.Text == b.Text
	}
	if a.Tag != b.Tag {
		return false
	}
	if !attrsEqual(a.Attrs, b.Attrs) || !listenersEqual(a.Listeners, b.Listeners) {
		return false
	}
	return EqualSeq(a.Children, b.Children)
}

// EqualSeq reports whether two node sequences are pairwise Equal.
func EqualSeq(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b *Attributes) bool {
	if a.Len() != b.Len() {
		return false
	}
	ak, bk := a.Keys(), b.Keys()
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
		av, _ := a.Get(ak[i])
		bv, _ := b.Get(bk[i])
		if av != bv {
			return false
		}
	}
	return true
}

func listenersEqual(a, b *Listeners) bool {
	if a.Len() != b.Len() {
		return false
	}
	an, bn := a.Names(), b.Names()
	for i := range an {
		if an[i] != bn[i] || len(a.Handlers(an[i])) != len(b.Handlers(bn[i])) {
			return false
		}
	}
	return true
}
