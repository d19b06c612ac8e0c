package reconcile

import "github.com/vango-dev/tessera/pkg/vdom"

// Host is the capability set a live tree must provide.
//
// N is the host's node handle type. Implementations need not be safe for
// concurrent use.
type Host[N any] interface {
	CreateNode(tag string) N
	CreateTextNode(content string) N
	CreateCommentNode(content string) N
	SetAttribute(node N, key, value string)
	AddListener(node N, event string, h vdom.Handler)
	AppendChild(parent, child N)
	ReplaceNode(old, replacement N)
	ChildAt(node N, index int) N
	ChildCount(node N) int
}

// RawTextHost is implemented by hosts that distinguish raw text from text.
// Hosts without it receive raw text through CreateTextNode.
type RawTextHost[N any] interface {
	CreateRawTextNode(content string) N
}
