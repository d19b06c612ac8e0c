package live

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/tessera/pkg/host/memhost"
	"github.com/vango-dev/tessera/pkg/protocol"
)

// FrameWriter receives the frames a session produces.
// WriteFrame is called from the session loop and, for error frames, from
// the connection's read loop; implementations must serialize writes.
type FrameWriter interface {
	WriteFrame(f *protocol.Frame) error
}

// FrameWriterFunc adapts a function to FrameWriter.
type FrameWriterFunc func(f *protocol.Frame) error

// WriteFrame calls fn(f).
func (fn FrameWriterFunc) WriteFrame(f *protocol.Frame) error {
	return fn(f)
}

// wsWriter writes frames as binary WebSocket messages.
type wsWriter struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	timeout time.Duration
}

func (w *wsWriter) WriteFrame(f *protocol.Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timeout > 0 {
		w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
	}
	return w.conn.WriteMessage(websocket.BinaryMessage, f.Encode())
}

// toWire converts a host log to wire mutations. Op values are shared.
func toWire(log []memhost.Mutation) []protocol.Mutation {
	out := make([]protocol.Mutation, len(log))
	for i, m := range log {
		out[i] = protocol.Mutation{
			Op:     protocol.MutationOp(m.Op),
			Target: m.Target,
			Node:   m.Node,
			Key:    m.Key,
			Value:  m.Value,
		}
	}
	return out
}

// patchFrames packs muts into as few FramePatches frames as fit. Frames
// are numbered from seq on; the returned value is the next free number.
// Only the first frame carries flags.
func patchFrames(muts []protocol.Mutation, flags protocol.FrameFlags, seq uint64) ([]*protocol.Frame, uint64, error) {
	var frames []*protocol.Frame
	var pack func(chunk []protocol.Mutation) error
	pack = func(chunk []protocol.Mutation) error {
		f, err := protocol.NewPatchesFrame(&protocol.MutationsFrame{Seq: seq, Mutations: chunk}, 0)
		if errors.Is(err, protocol.ErrFrameTooLarge) && len(chunk) > 1 {
			half := len(chunk) / 2
			if err := pack(chunk[:half]); err != nil {
				return err
			}
			return pack(chunk[half:])
		}
		if err != nil {
			return err
		}
		seq++
		frames = append(frames, f)
		return nil
	}
	if err := pack(muts); err != nil {
		return nil, seq, err
	}
	frames[0].Flags = flags
	return frames, seq, nil
}
