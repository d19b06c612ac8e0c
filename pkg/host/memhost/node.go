package memhost

import "github.com/vango-dev/tessera/pkg/vdom"

// Attribute is a live attribute.
type Attribute struct {
	Key   string
	Value string
}

// Node is a live host node.
type Node struct {
	id        uint64
	kind      vdom.Kind
	tag       string
	text      string
	attrs     []Attribute
	listeners vdom.Listeners
	children  []*Node
	parent    *Node
}

// ID returns the node's host ID.
func (n *Node) ID() uint64 { return n.id }

// Kind returns the node kind.
func (n *Node) Kind() vdom.Kind { return n.kind }

// Tag returns the element tag, or "" for text-like nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the content of a text-like node.
func (n *Node) Text() string { return n.text }

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Attributes returns the live attributes in the order they were first set.
func (n *Node) Attributes() []Attribute { return n.attrs }

// Attr returns the value of the attribute key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// ListenerCount returns the number of handlers registered for event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners.Handlers(event))
}

// Dispatch invokes the node's handlers for ev.Name in registration order.
func (n *Node) Dispatch(ev vdom.Event) int {
	return n.listeners.Dispatch(ev)
}

// setAttr sets or overwrites an attribute, as a DOM setAttribute does.
func (n *Node) setAttr(key, value string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Key: key, Value: value})
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := p.indexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// walk calls fn for n and every descendant, parents first.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}
