package memhost

import "fmt"

// Op is a host mutation type.
// Values match protocol.MutationOp for direct conversion.
type Op uint8

const (
	OpCreateElement Op = 0x01 // Value: tag
	OpCreateText    Op = 0x02 // Value: content
	OpCreateRawText Op = 0x03 // Value: content
	OpCreateComment Op = 0x04 // Value: content
	OpSetAttribute  Op = 0x05 // Key, Value
	OpAddListener   Op = 0x06 // Key: event name
	OpAppendChild   Op = 0x07 // Target: parent, Node: child
	OpReplaceNode   Op = 0x08 // Target: old node, Node: replacement
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpCreateRawText:
		return "CreateRawText"
	case OpCreateComment:
		return "CreateComment"
	case OpSetAttribute:
		return "SetAttribute"
	case OpAddListener:
		return "AddListener"
	case OpAppendChild:
		return "AppendChild"
	case OpReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Mutation is one recorded host call.
type Mutation struct {
	Op     Op
	Target uint64 // Node the call created or acted on
	Node   uint64 // Second node for AppendChild and ReplaceNode
	Key    string
	Value  string
}

// String returns a compact form such as SetAttribute(3 class="x").
func (m Mutation) String() string {
	switch m.Op {
	case OpSetAttribute:
		return fmt.Sprintf("%s(%d %s=%q)", m.Op, m.Target, m.Key, m.Value)
	case OpAddListener:
		return fmt.Sprintf("%s(%d %s)", m.Op, m.Target, m.Key)
	case OpAppendChild, OpReplaceNode:
		return fmt.Sprintf("%s(%d %d)", m.Op, m.Target, m.Node)
	default:
		return fmt.Sprintf("%s(%d %q)", m.Op, m.Target, m.Value)
	}
}
