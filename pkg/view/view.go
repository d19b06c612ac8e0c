package view

import (
	"fmt"

	"github.com/vango-dev/tessera/pkg/vdom"
)

// View is anything that can contribute render nodes to a builder.
type View interface {
	Build(b *vdom.Builder)
}

// Build composes v into a fresh node sequence.
func Build(v View) []*vdom.Node {
	b := vdom.NewBuilder()
	buildInto(b, v)
	return b.Nodes()
}

// BuildRoot composes v and returns its single root node.
// It panics if v does not produce exactly one node.
func BuildRoot(v View) *vdom.Node {
	nodes := Build(v)
	if len(nodes) != 1 {
		panic(fmt.Sprintf("view: BuildRoot expected 1 root node, got %d", len(nodes)))
	}
	return nodes[0]
}

// Element is a single element with child views.
type Element struct {
	Tag      string
	Children []View
}

// El creates an element view. Nil children are skipped.
func El(tag string, children ...View) Element {
	return Element{Tag: tag, Children: children}
}

// Build implements View.
func (e Element) Build(b *vdom.Builder) {
	node := vdom.Element(e.Tag)
	if len(e.Children) > 0 {
		inner := vdom.NewBuilder()
		for _, c := range e.Children {
			buildInto(inner, c)
		}
		node.Children = inner.Nodes()
	}
	b.Append(node)
}

// textView is a text-like leaf.
type textView struct {
	kind    vdom.Kind
	content string
}

func (t textView) Build(b *vdom.Builder) {
	switch t.kind {
	case vdom.KindRawText:
		b.Append(vdom.RawText(t.content))
	case vdom.KindComment:
		b.Append(vdom.Comment(t.content))
	default:
		b.Append(vdom.Text(t.content))
	}
}

// Text creates a text view.
func Text(content string) View {
	return textView{kind: vdom.KindText, content: content}
}

// Textf creates a formatted text view.
func Textf(format string, args ...any) View {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a raw text view whose content is not escaped by
// serializing hosts.
func Raw(content string) View {
	return textView{kind: vdom.KindRawText, content: content}
}

// Comment creates a comment view.
func Comment(content string) View {
	return textView{kind: vdom.KindComment, content: content}
}

type empty struct{}

func (empty) Build(*vdom.Builder) {}

// Empty returns a view that contributes nothing.
func Empty() View {
	return empty{}
}

// FuncView defers its body until build time.
type FuncView struct {
	render func() View
}

// Func creates a view from a render function.
func Func(render func() View) FuncView {
	return FuncView{render: render}
}

// Build implements View.
func (f FuncView) Build(b *vdom.Builder) {
	if f.render == nil {
		return
	}
	buildInto(b, f.render())
}

// buildInto builds v unless it is a nil interface.
func buildInto(b *vdom.Builder, v View) {
	if v != nil {
		v.Build(b)
	}
}
