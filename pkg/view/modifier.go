package view

import (
	"strings"

	"github.com/vango-dev/tessera/pkg/vdom"
)

// Modifier builds content and then contributes to the nodes it produced.
//
// Modifiers act positionally: they target the most recently appended node,
// not a node found by searching the tree.
type Modifier interface {
	Modify(b *vdom.Builder, content View)
}

// ModifierFunc adapts a function to Modifier.
type ModifierFunc func(b *vdom.Builder, content View)

// Modify implements Modifier.
func (f ModifierFunc) Modify(b *vdom.Builder, content View) {
	f(b, content)
}

// Modified is content with a modifier applied.
type Modified struct {
	Content  View
	Modifier Modifier
}

// Build implements View.
func (m Modified) Build(b *vdom.Builder) {
	if m.Modifier == nil {
		buildInto(b, m.Content)
		return
	}
	m.Modifier.Modify(b, m.Content)
}

// Modify applies mods to v in order; the first modifier is applied first.
func Modify(v View, mods ...Modifier) View {
	for _, m := range mods {
		v = Modified{Content: v, Modifier: m}
	}
	return v
}

// Contributor is a Modifier made of plain attribute and listener
// contributions, merged at the cursor of the content's last node.
// Content that produces no nodes leaves nothing to modify.
type Contributor []vdom.Contribution

// Modify implements Modifier.
func (c Contributor) Modify(b *vdom.Builder, content View) {
	before := b.Len()
	buildInto(b, content)
	if b.Len() == before {
		return
	}
	cur, _ := b.Last()
	for _, contrib := range c {
		b.MergeAt(cur, contrib)
	}
}

// Attr contributes value to the attribute key.
func Attr(key, value string) Contributor {
	return Contributor{vdom.Attr(key, value)}
}

// ID sets the id attribute.
func ID(id string) Contributor { return Attr("id", id) }

// Class contributes class names. Each name is followed by a space so
// repeated contributions concatenate into a valid class list.
func Class(names ...string) Contributor {
	var sb strings.Builder
	for _, n := range names {
		if n == "" {
			continue
		}
		sb.WriteString(n)
		sb.WriteByte(' ')
	}
	return Attr("class", sb.String())
}

// Style contributes one inline style declaration.
func Style(property, value string) Contributor {
	return Attr("style", property+":"+value+";")
}

// On registers h for event.
func On(event string, h vdom.Handler) Contributor {
	return Contributor{vdom.Listen(event, h)}
}

// With combines contributors in order.
func With(cs ...Contributor) Contributor {
	var out Contributor
	for _, c := range cs {
		out = append(out, c...)
	}
	return out
}

// Nested scopes c depth levels down the last-child chain of the modified
// node. Use it to target the rendered output inside a wrapper element.
func Nested(depth int, c Contributor) Contributor {
	out := make(Contributor, len(c))
	for i, contrib := range c {
		out[i] = contrib.At(depth)
	}
	return out
}

// Innermost scopes c to the deepest element on the last-child chain.
func Innermost(c Contributor) Contributor {
	return Nested(vdom.Innermost, c)
}

// Each applies c to every node the content produces rather than only the
// last one.
func Each(c Contributor) Modifier {
	return ModifierFunc(func(b *vdom.Builder, content View) {
		inner := vdom.NewBuilder()
		buildInto(inner, content)
		for _, contrib := range c {
			inner.MergeIntoAll(contrib)
		}
		b.Extend(inner.Nodes()...)
	})
}
