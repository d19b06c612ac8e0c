package live

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	tserrors "github.com/vango-dev/tessera/internal/errors"
	"github.com/vango-dev/tessera/pkg/host/memhost"
	"github.com/vango-dev/tessera/pkg/protocol"
	"github.com/vango-dev/tessera/pkg/reconcile"
	"github.com/vango-dev/tessera/pkg/vdom"
	"github.com/vango-dev/tessera/pkg/view"
)

// RootTag is the tag of the mirror root; rendered nodes are its children.
const RootTag = "body"

// Session errors.
var (
	ErrQueueFull     = errors.New("live: event queue full")
	ErrSessionClosed = tserrors.New("T062")
)

// RenderFunc produces the view for the current state.
type RenderFunc func() view.View

type inbound struct {
	target uint64
	event  vdom.Event
}

type sessionOptions struct {
	logger    *slog.Logger
	metrics   *Metrics
	reconcile *reconcile.Metrics
	queueSize int
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

// WithSessionLogger sets the session logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// WithSessionMetrics records session activity on m.
func WithSessionMetrics(m *Metrics) SessionOption {
	return func(o *sessionOptions) {
		o.metrics = m
	}
}

// WithReconcileMetrics records reconciler activity on m.
func WithReconcileMetrics(m *reconcile.Metrics) SessionOption {
	return func(o *sessionOptions) {
		o.reconcile = m
	}
}

// WithQueueSize sets how many events may wait for the loop.
func WithQueueSize(n int) SessionOption {
	return func(o *sessionOptions) {
		o.queueSize = n
	}
}

// Session is one live document. See the package documentation for the
// threading model.
type Session struct {
	ID string

	render RenderFunc
	out    FrameWriter
	host   *memhost.Host
	rec    *reconcile.Reconciler[*memhost.Node]

	// Owned by the loop.
	prev  []*vdom.Node
	seq   uint64
	total reconcile.Stats

	events   chan inbound
	calls    chan func()
	renderCh chan struct{}
	done     chan struct{}
	once     sync.Once

	logger  *slog.Logger
	metrics *Metrics
}

// NewSession creates a session that renders with render and writes frames
// to out. Nothing is rendered until Run.
func NewSession(render RenderFunc, out FrameWriter, opts ...SessionOption) *Session {
	o := sessionOptions{queueSize: 64}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.queueSize < 1 {
		o.queueSize = 1
	}

	id := generateSessionID()
	logger := o.logger.With("session_id", id)
	host := memhost.New(RootTag)

	return &Session{
		ID:       id,
		render:   render,
		out:      out,
		host:     host,
		rec:      reconcile.New[*memhost.Node](host, reconcile.WithLogger(logger), reconcile.WithMetrics(o.reconcile)),
		events:   make(chan inbound, o.queueSize),
		calls:    make(chan func()),
		renderCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
		logger:   logger,
		metrics:  o.metrics,
	}
}

// generateSessionID generates a cryptographically random session ID.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

// Run renders the initial tree and then serves the loop until ctx is
// done, Close is called, or a frame cannot be written.
func (s *Session) Run(ctx context.Context) error {
	defer s.Close()
	s.metrics.sessionOpened()
	defer s.metrics.sessionClosed()

	if err := s.renderNow(ctx, protocol.FlagInitial); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			s.sendFinal()
			return ctx.Err()

		case <-s.done:
			return nil

		case in := <-s.events:
			s.handleEvent(in)
			if err := s.renderNow(ctx, 0); err != nil {
				return err
			}

		case fn := <-s.calls:
			fn()

		case <-s.renderCh:
			if err := s.renderNow(ctx, 0); err != nil {
				return err
			}
		}
	}
}

// Invalidate requests a re-render. It never blocks.
func (s *Session) Invalidate() {
	select {
	case s.renderCh <- struct{}{}:
	default:
		// A render is already pending.
	}
}

// Dispatch queues ev for the mirror node with the given host ID.
func (s *Session) Dispatch(target uint64, ev vdom.Event) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	select {
	case s.events <- inbound{target: target, event: ev}:
		return nil
	default:
		s.metrics.event(resultDropped)
		s.logger.Warn("event queue full, dropping event", "target", target, "event", ev.Name)
		return ErrQueueFull
	}
}

// Do runs fn on the loop with the mirror host and waits for it.
func (s *Session) Do(ctx context.Context, fn func(h *memhost.Host)) error {
	finished := make(chan struct{})
	call := func() {
		defer close(finished)
		fn(s.host)
	}
	select {
	case s.calls <- call:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-finished
	return nil
}

// Stats returns the reconciler work done so far. Loop only.
func (s *Session) Stats() reconcile.Stats {
	return s.total
}

// Close stops the loop. It is safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		s.logger.Info("session closed", "frames", s.seq, "mutations", s.total.Mutations())
	})
}

// Done returns a channel that is closed when the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) handleEvent(in inbound) {
	if _, ok := s.host.Lookup(in.target); !ok {
		s.metrics.event(resultNotFound)
		s.logger.Debug("event for unknown node", "target", in.target, "event", in.event.Name)
		s.sendError(protocol.NewError(protocol.ErrNodeNotFound,
			fmt.Sprintf("node %d is not mounted", in.target)))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.metrics.event(resultPanic)
			err := tserrors.New("T061").WithDetailf("%s on node %d: %v", in.event.Name, in.target, r)
			s.logger.Error("handler panic", "error", err, "stack", string(debug.Stack()))
			s.sendError(protocol.NewError(protocol.ErrHandlerPanic, in.event.Name))
		}
	}()
	n := s.host.Dispatch(in.target, in.event)
	s.metrics.event(resultHandled)
	s.logger.Debug("event", "target", in.target, "event", in.event.Name, "handlers", n)
}

// build runs the render function, turning a panic into an error.
func (s *Session) build() (nodes []*vdom.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("render panic", "panic", r, "stack", string(debug.Stack()))
			err = tserrors.New("T060").WithDetailf("%v", r)
		}
	}()
	return view.Build(s.render()), nil
}

// renderNow builds, reconciles against the previous render and flushes
// the recorded mutations. Nothing is sent when a re-render changes
// nothing; the initial render always sends a frame.
func (s *Session) renderNow(ctx context.Context, flags protocol.FrameFlags) error {
	next, err := s.build()
	if err != nil {
		s.sendError(protocol.NewFatalError(protocol.ErrRenderFailure, "render failed"))
		return err
	}

	stats := s.rec.ReconcileChildren(ctx, s.prev, next, s.host.Root())
	s.prev = next
	s.total = s.total.Add(stats)

	log := s.host.Drain()
	if len(log) == 0 && !flags.Has(protocol.FlagInitial) {
		return nil
	}
	frames, seq, err := patchFrames(toWire(log), flags, s.seq+1)
	if err != nil {
		s.sendError(protocol.NewFatalError(protocol.ErrServerError, "patch batch too large"))
		return fmt.Errorf("live: encode patches: %w", err)
	}
	s.seq = seq - 1

	for _, f := range frames {
		if err := s.write(f); err != nil {
			return err
		}
	}
	return nil
}

// sendFinal tells the client no more patches follow. The peer may already
// be gone, so failures are only logged.
func (s *Session) sendFinal() {
	frames, seq, err := patchFrames(nil, protocol.FlagFinal, s.seq+1)
	if err != nil {
		return
	}
	if err := s.write(frames[0]); err != nil {
		s.logger.Debug("final frame not sent", "error", err)
		return
	}
	s.seq = seq - 1
}

func (s *Session) write(f *protocol.Frame) error {
	if err := s.out.WriteFrame(f); err != nil {
		return tserrors.New("T041").Wrap(err)
	}
	s.metrics.frameSent(f.Type.String(), protocol.FrameHeaderSize+len(f.Payload))
	return nil
}

func (s *Session) sendError(em *protocol.ErrorMessage) {
	if err := s.write(protocol.NewErrorFrame(em)); err != nil {
		s.logger.Warn("error frame not sent", "error", err, "code", em.Code)
	}
}
