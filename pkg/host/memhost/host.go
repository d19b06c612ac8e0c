package memhost

import "github.com/vango-dev/tessera/pkg/vdom"

// RootID is the ID of a host's root element.
const RootID uint64 = 0

// Host is an in-memory live tree.
type Host struct {
	root     *Node
	nodes    map[uint64]*Node
	nextID   uint64
	log      []Mutation
	recorder func(Mutation)
}

// Option configures a Host.
type Option func(*Host)

// WithRecorder calls fn for every mutation as it happens.
func WithRecorder(fn func(Mutation)) Option {
	return func(h *Host) {
		h.recorder = fn
	}
}

// New creates a Host whose root is an element with the given tag and ID
// RootID. The root's creation is not logged.
func New(rootTag string, opts ...Option) *Host {
	root := &Node{id: RootID, kind: vdom.KindElement, tag: rootTag}
	h := &Host{
		root:   root,
		nodes:  map[uint64]*Node{RootID: root},
		nextID: RootID + 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Root returns the root element.
func (h *Host) Root() *Node {
	return h.root
}

// Lookup returns the attached or pending node with the given ID.
// Nodes removed by ReplaceNode are forgotten.
func (h *Host) Lookup(id uint64) (*Node, bool) {
	n, ok := h.nodes[id]
	return n, ok
}

// Len returns the number of nodes the host tracks, root included.
func (h *Host) Len() int {
	return len(h.nodes)
}

// Mutations returns the mutation log.
func (h *Host) Mutations() []Mutation {
	return h.log
}

// Drain returns the mutation log and clears it.
func (h *Host) Drain() []Mutation {
	out := h.log
	h.log = nil
	return out
}

// Dispatch delivers ev to the node with the given ID and returns the number
// of handlers invoked. Unknown IDs invoke nothing.
func (h *Host) Dispatch(id uint64, ev vdom.Event) int {
	n, ok := h.nodes[id]
	if !ok {
		return 0
	}
	return n.Dispatch(ev)
}

func (h *Host) record(m Mutation) {
	h.log = append(h.log, m)
	if h.recorder != nil {
		h.recorder(m)
	}
}

func (h *Host) create(kind vdom.Kind, tag, text string, op Op, value string) *Node {
	n := &Node{id: h.nextID, kind: kind, tag: tag, text: text}
	h.nextID++
	h.nodes[n.id] = n
	h.record(Mutation{Op: op, Target: n.id, Value: value})
	return n
}

// CreateNode creates a detached element.
func (h *Host) CreateNode(tag string) *Node {
	return h.create(vdom.KindElement, tag, "", OpCreateElement, tag)
}

// CreateTextNode creates a detached text node.
func (h *Host) CreateTextNode(content string) *Node {
	return h.create(vdom.KindText, "", content, OpCreateText, content)
}

// CreateRawTextNode creates a detached raw text node.
func (h *Host) CreateRawTextNode(content string) *Node {
	return h.create(vdom.KindRawText, "", content, OpCreateRawText, content)
}

// CreateCommentNode creates a detached comment node.
func (h *Host) CreateCommentNode(content string) *Node {
	return h.create(vdom.KindComment, "", content, OpCreateComment, content)
}

// SetAttribute sets key on node, replacing any previous value.
func (h *Host) SetAttribute(node *Node, key, value string) {
	node.setAttr(key, value)
	h.record(Mutation{Op: OpSetAttribute, Target: node.id, Key: key, Value: value})
}

// AddListener registers handler for event on node.
func (h *Host) AddListener(node *Node, event string, handler vdom.Handler) {
	node.listeners.Add(event, handler)
	h.record(Mutation{Op: OpAddListener, Target: node.id, Key: event})
}

// AppendChild moves child to the end of parent's children.
func (h *Host) AppendChild(parent, child *Node) {
	child.detach()
	child.parent = parent
	parent.children = append(parent.children, child)
	h.record(Mutation{Op: OpAppendChild, Target: parent.id, Node: child.id})
}

// ReplaceNode puts replacement where old is and forgets old's subtree.
func (h *Host) ReplaceNode(old, replacement *Node) {
	replacement.detach()
	if p := old.parent; p != nil {
		i := p.indexOf(old)
		p.children[i] = replacement
		replacement.parent = p
		old.parent = nil
	} else if old == h.root {
		h.root = replacement
	}
	old.walk(func(n *Node) { delete(h.nodes, n.id) })
	h.record(Mutation{Op: OpReplaceNode, Target: old.id, Node: replacement.id})
}

// ChildAt returns the index-th child of node.
// An out-of-range index panics; callers own that contract.
func (h *Host) ChildAt(node *Node, index int) *Node {
	return node.children[index]
}

// ChildCount returns the number of children of node.
func (h *Host) ChildCount(node *Node) int {
	return len(node.children)
}
