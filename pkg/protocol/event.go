package protocol

import "fmt"

// Event is a client event addressed to a host node.
type Event struct {
	Target  uint64 // Host node ID
	Name    string // Event name, e.g. "click"
	Payload string // Opaque to the protocol; decoded by handlers
}

// EncodeEvent encodes an event to bytes.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoderWithCap(UvarintLen(ev.Target) + StringLen(ev.Name) + StringLen(ev.Payload))
	EncodeEventTo(e, ev)
	return e.Bytes()
}

// EncodeEventTo encodes an event using the provided encoder.
func EncodeEventTo(e *Encoder, ev *Event) {
	e.WriteUvarint(ev.Target)
	e.WriteString(ev.Name)
	e.WriteString(ev.Payload)
}

// DecodeEvent decodes an event from bytes.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)
	ev, err := DecodeEventFrom(d)
	if err != nil {
		return nil, err
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return ev, nil
}

// DecodeEventFrom decodes an event from a decoder.
func DecodeEventFrom(d *Decoder) (*Event, error) {
	var ev Event
	var err error
	if ev.Target, err = d.ReadUvarint(); err != nil {
		return nil, fmt.Errorf("protocol: event target: %w", err)
	}
	if ev.Name, err = d.ReadString(); err != nil {
		return nil, fmt.Errorf("protocol: event name: %w", err)
	}
	if ev.Payload, err = d.ReadString(); err != nil {
		return nil, fmt.Errorf("protocol: event payload: %w", err)
	}
	return &ev, nil
}

// NewEventFrame wraps an encoded event in a FrameEvent frame.
func NewEventFrame(ev *Event) *Frame {
	return NewFrame(FrameEvent, EncodeEvent(ev))
}
