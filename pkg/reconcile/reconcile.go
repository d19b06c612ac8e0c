package reconcile

import (
	"fmt"

	"github.com/vango-dev/tessera/pkg/vdom"
)

// Mount renders n fresh on host and returns the new live node.
func Mount[N any](host Host[N], n *vdom.Node) N {
	p := &patcher[N]{host: host}
	return p.mount(n)
}

// Reconcile patches live, which currently shows prev, so that it shows next.
// It returns the live node now representing next: live itself, or its
// replacement when the node could not be reused.
func Reconcile[N any](host Host[N], prev, next *vdom.Node, live N) N {
	p := &patcher[N]{host: host}
	return p.reconcile(prev, next, live)
}

// ReconcileChildren patches the children of parent from prev to next by
// position.
func ReconcileChildren[N any](host Host[N], prev, next []*vdom.Node, parent N) {
	p := &patcher[N]{host: host}
	p.children(prev, next, parent)
}

// patcher carries the host and the running counters of one call.
type patcher[N any] struct {
	host  Host[N]
	stats Stats
}

func (p *patcher[N]) mount(n *vdom.Node) N {
	p.stats.Created++
	switch n.Kind {
	case vdom.KindElement:
		node := p.host.CreateNode(n.Tag)
		n.Attrs.Each(func(k, v string) {
			p.host.SetAttribute(node, k, v)
			p.stats.AttributesSet++
		})
		n.Listeners.Each(func(name string, hs []vdom.Handler) {
			p.listen(node, name, hs)
		})
		for _, c := range n.Children {
			child := p.mount(c)
			p.host.AppendChild(node, child)
			p.stats.Appended++
		}
		return node
	case vdom.KindText:
		return p.host.CreateTextNode(n.Text)
	case vdom.KindRawText:
		if rh, ok := p.host.(RawTextHost[N]); ok {
			return rh.CreateRawTextNode(n.Text)
		}
		return p.host.CreateTextNode(n.Text)
	case vdom.KindComment:
		return p.host.CreateCommentNode(n.Text)
	default:
		panic(fmt.Sprintf("reconcile: unknown node kind %v", n.Kind))
	}
}

func (p *patcher[N]) listen(node N, name string, hs []vdom.Handler) {
	for _, h := range hs {
		p.host.AddListener(node, name, h)
		p.stats.ListenersAdded++
	}
}

func (p *patcher[N]) replace(live N, n *vdom.Node) N {
	fresh := p.mount(n)
	p.host.ReplaceNode(live, fresh)
	p.stats.Replaced++
	return fresh
}

func (p *patcher[N]) reconcile(prev, next *vdom.Node, live N) N {
	if next == nil {
		return live
	}
	p.stats.Visited++

	if prev == nil || prev.Kind != next.Kind {
		return p.replace(live, next)
	}

	if next.Kind != vdom.KindElement {
		if prev.Text == next.Text {
			return live
		}
		return p.replace(live, next)
	}

	if prev.Tag != next.Tag {
		return p.replace(live, next)
	}

	// Additive only: keys already present in prev are left as they are.
	next.Attrs.Each(func(k, v string) {
		if !prev.Attrs.Has(k) {
			p.host.SetAttribute(live, k, v)
			p.stats.AttributesSet++
		}
	})
	next.Listeners.Each(func(name string, hs []vdom.Handler) {
		if !prev.Listeners.Has(name) {
			p.listen(live, name, hs)
		}
	})

	p.children(prev.Children, next.Children, live)
	return live
}

func (p *patcher[N]) children(prev, next []*vdom.Node, parent N) {
	shared := min(len(prev), len(next))
	for i := 0; i < shared; i++ {
		p.reconcile(prev[i], next[i], p.host.ChildAt(parent, i))
	}
	// Live children past len(next) stay mounted.
	for i := len(prev); i < len(next); i++ {
		child := p.mount(next[i])
		p.host.AppendChild(parent, child)
		p.stats.Appended++
	}
}
