package live

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	tserrors "github.com/vango-dev/tessera/internal/errors"
	"github.com/vango-dev/tessera/pkg/protocol"
	"github.com/vango-dev/tessera/pkg/vdom"
)

// HandleWebSocket upgrades the request and runs a session on it until the
// client disconnects or the request context ends.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(int64(protocol.FrameHeaderSize + protocol.MaxPayloadSize))

	out := &wsWriter{conn: conn, timeout: s.config.Live.WriteTimeout.Std()}
	logger := s.logger.With("request_id", middleware.GetReqID(r.Context()), "remote", r.RemoteAddr)
	session := NewSession(s.app(), out,
		WithSessionLogger(logger),
		WithSessionMetrics(s.metrics),
		WithReconcileMetrics(s.reconcile),
		WithQueueSize(s.config.Live.QueueSize),
	)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		s.readLoop(conn, session, out)
	}()
	if interval := s.config.Live.PingInterval.Std(); interval > 0 {
		go s.pingLoop(ctx, conn, interval)
	}

	err = session.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		session.logger.Debug("session ended")
	default:
		session.logger.Warn("session ended", "error", err)
	}
}

// readLoop decodes client frames until the connection fails. Malformed
// frames are answered with an error frame and otherwise ignored.
func (s *Server) readLoop(conn *websocket.Conn, session *Session, out FrameWriter) {
	if wait := s.pongWait(); wait > 0 {
		conn.SetReadDeadline(time.Now().Add(wait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wait))
		})
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				session.logger.Debug("read failed", "error", err)
			}
			return
		}
		if msgType != websocket.BinaryMessage {
			reject(out, protocol.ErrInvalidFrame, "expected binary message")
			continue
		}

		frame, err := protocol.DecodeFrame(data)
		if err != nil {
			session.logger.Debug("bad frame", "error", tserrors.New("T040").Wrap(err))
			reject(out, protocol.ErrInvalidFrame, err.Error())
			continue
		}
		if frame.Type != protocol.FrameEvent {
			reject(out, protocol.ErrInvalidFrame, "unexpected "+frame.Type.String()+" frame")
			continue
		}
		ev, err := protocol.DecodeEvent(frame.Payload)
		if err != nil {
			session.logger.Debug("bad event", "error", tserrors.New("T040").Wrap(err))
			reject(out, protocol.ErrInvalidEvent, err.Error())
			continue
		}

		switch err := session.Dispatch(ev.Target, vdom.Event{Name: ev.Name, Payload: ev.Payload}); {
		case errors.Is(err, ErrQueueFull):
			reject(out, protocol.ErrQueueFull, ev.Name)
		case errors.Is(err, ErrSessionClosed):
			return
		}
	}
}

func (s *Server) pingLoop(ctx context.Context, conn *websocket.Conn, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var deadline time.Time
			if t := s.config.Live.WriteTimeout.Std(); t > 0 {
				deadline = time.Now().Add(t)
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

func reject(out FrameWriter, code protocol.ErrorCode, msg string) {
	out.WriteFrame(protocol.NewErrorFrame(protocol.NewError(code, msg)))
}
