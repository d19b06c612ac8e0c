package protocol

import (
	"errors"
	"fmt"
)

// MutationOp is the type of a host mutation on the wire.
type MutationOp uint8

// Mutation op constants. Values match memhost.Op.
const (
	OpCreateElement MutationOp = 0x01 // Create detached element
	OpCreateText    MutationOp = 0x02 // Create detached text node
	OpCreateRawText MutationOp = 0x03 // Create detached unescaped text node
	OpCreateComment MutationOp = 0x04 // Create detached comment
	OpSetAttr       MutationOp = 0x05 // Set attribute
	OpListen        MutationOp = 0x06 // Forward an event type to the server
	OpAppendChild   MutationOp = 0x07 // Append child to parent
	OpReplace       MutationOp = 0x08 // Replace node in place
)

// String returns the string representation of the op.
func (op MutationOp) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpCreateRawText:
		return "CreateRawText"
	case OpCreateComment:
		return "CreateComment"
	case OpSetAttr:
		return "SetAttr"
	case OpListen:
		return "Listen"
	case OpAppendChild:
		return "AppendChild"
	case OpReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// ErrUnknownOp is returned when a patches payload holds an unknown op byte.
var ErrUnknownOp = errors.New("protocol: unknown mutation op")

// Mutation is one host call in wire form.
type Mutation struct {
	Op     MutationOp
	Target uint64 // Created node, acted-on node, parent or replaced node
	Node   uint64 // Child for AppendChild, replacement for Replace
	Key    string // Attribute key or event name
	Value  string // Tag, text or attribute value
}

// MutationsFrame is a batch of mutations with a sequence number.
type MutationsFrame struct {
	Seq       uint64
	Mutations []Mutation
}

// EncodeMutations encodes a batch to bytes.
func EncodeMutations(mf *MutationsFrame) []byte {
	e := NewEncoderWithCap(mutationsSize(mf))
	EncodeMutationsTo(e, mf)
	return e.Bytes()
}

// EncodeMutationsTo encodes a batch using the provided encoder.
func EncodeMutationsTo(e *Encoder, mf *MutationsFrame) {
	e.WriteUvarint(mf.Seq)
	e.WriteUvarint(uint64(len(mf.Mutations)))
	for i := range mf.Mutations {
		encodeMutation(e, &mf.Mutations[i])
	}
}

func encodeMutation(e *Encoder, m *Mutation) {
	e.WriteByte(byte(m.Op))
	e.WriteUvarint(m.Target)
	switch m.Op {
	case OpCreateElement, OpCreateText, OpCreateRawText, OpCreateComment:
		e.WriteString(m.Value)
	case OpSetAttr:
		e.WriteString(m.Key)
		e.WriteString(m.Value)
	case OpListen:
		e.WriteString(m.Key)
	case OpAppendChild, OpReplace:
		e.WriteUvarint(m.Node)
	}
}

// mutationsSize returns the exact encoded size of mf.
func mutationsSize(mf *MutationsFrame) int {
	n := UvarintLen(mf.Seq) + UvarintLen(uint64(len(mf.Mutations)))
	for i := range mf.Mutations {
		m := &mf.Mutations[i]
		n += 1 + UvarintLen(m.Target)
		switch m.Op {
		case OpCreateElement, OpCreateText, OpCreateRawText, OpCreateComment:
			n += StringLen(m.Value)
		case OpSetAttr:
			n += StringLen(m.Key) + StringLen(m.Value)
		case OpListen:
			n += StringLen(m.Key)
		case OpAppendChild, OpReplace:
			n += UvarintLen(m.Node)
		}
	}
	return n
}

// DecodeMutations decodes a batch from bytes.
func DecodeMutations(data []byte) (*MutationsFrame, error) {
	d := NewDecoder(data)
	mf, err := DecodeMutationsFrom(d)
	if err != nil {
		return nil, err
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return mf, nil
}

// DecodeMutationsFrom decodes a batch from a decoder.
func DecodeMutationsFrom(d *Decoder) (*MutationsFrame, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, fmt.Errorf("protocol: mutations seq: %w", err)
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, fmt.Errorf("protocol: mutations count: %w", err)
	}

	mf := &MutationsFrame{Seq: seq, Mutations: make([]Mutation, count)}
	for i := 0; i < count; i++ {
		if err := decodeMutation(d, &mf.Mutations[i]); err != nil {
			return nil, fmt.Errorf("protocol: mutation %d: %w", i, err)
		}
	}
	return mf, nil
}

func decodeMutation(d *Decoder, m *Mutation) error {
	op, err := d.ReadByte()
	if err != nil {
		return err
	}
	m.Op = MutationOp(op)

	if m.Target, err = d.ReadUvarint(); err != nil {
		return err
	}

	switch m.Op {
	case OpCreateElement, OpCreateText, OpCreateRawText, OpCreateComment:
		m.Value, err = d.ReadString()
	case OpSetAttr:
		if m.Key, err = d.ReadString(); err != nil {
			return err
		}
		m.Value, err = d.ReadString()
	case OpListen:
		m.Key, err = d.ReadString()
	case OpAppendChild, OpReplace:
		m.Node, err = d.ReadUvarint()
	default:
		return fmt.Errorf("%w 0x%02x", ErrUnknownOp, op)
	}
	return err
}

// NewPatchesFrame wraps an encoded batch in a FramePatches frame.
func NewPatchesFrame(mf *MutationsFrame, flags FrameFlags) (*Frame, error) {
	payload := EncodeMutations(mf)
	if len(payload) > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	return &Frame{Type: FramePatches, Flags: flags, Payload: payload}, nil
}
