package live

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/tessera/internal/config"
	tserrors "github.com/vango-dev/tessera/internal/errors"
	"github.com/vango-dev/tessera/pkg/host/memhost"
	"github.com/vango-dev/tessera/pkg/reconcile"
	"github.com/vango-dev/tessera/pkg/view"
)

// Routes.
const (
	PathLive    = "/live"
	PathHealthz = "/healthz"
)

// App returns the render function for a new session. State captured by the
// returned function belongs to that session alone.
type App func() RenderFunc

// Server serves an App over HTTP and WebSocket.
type Server struct {
	app      App
	config   *config.Config
	logger   *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader

	registry  *prometheus.Registry
	metrics   *Metrics
	reconcile *reconcile.Metrics

	httpServer *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server logger. Sessions log through it.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the registry metrics are registered on and served from.
func WithRegistry(reg *prometheus.Registry) ServerOption {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithCheckOrigin overrides the WebSocket origin check.
// The default accepts same-origin requests and requests without Origin.
func WithCheckOrigin(fn func(r *http.Request) bool) ServerOption {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

// NewServer creates a server for app. A nil cfg uses config.New().
func NewServer(app App, cfg *config.Config, opts ...ServerOption) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Server{
		app:    app,
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if cfg.Metrics.Enabled {
		if s.registry == nil {
			s.registry = prometheus.NewRegistry()
			s.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		s.metrics = NewMetrics(s.registry, cfg.Metrics.Namespace)
		s.reconcile = reconcile.NewMetrics(
			reconcile.WithRegistry(s.registry),
			reconcile.WithNamespace(cfg.Metrics.Namespace),
		)
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get(PathLive, s.HandleWebSocket)
	r.Get(PathHealthz, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})
	if s.registry != nil {
		r.Handle(s.config.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Metrics returns the session metrics, or nil when metrics are disabled.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// handlePage serves an HTML snapshot of a fresh render.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	body, err := Snapshot(s.app())
	if err != nil {
		s.logger.Error("page render failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head>")
	buf.WriteString(body)
	buf.WriteString("</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Snapshot renders once into a fresh mirror and returns the root's markup.
func Snapshot(render RenderFunc) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tserrors.New("T060").WithDetailf("%v", r)
		}
	}()
	host := memhost.New(RootTag)
	reconcile.ReconcileChildren[*memhost.Node](host, nil, view.Build(render()), host.Root())
	return memhost.HTML(host.Root()), nil
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Addr)
	if err != nil {
		return tserrors.New("T020").WithDetailf("listen on %s", s.config.Server.Addr).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.Server.ReadTimeout.Std(),
		ReadTimeout:       s.config.Server.ReadTimeout.Std(),
		WriteTimeout:      s.config.Server.WriteTimeout.Std(),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return tserrors.New("T020").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return tserrors.New("T020").WithDetail("graceful shutdown").Wrap(err)
	}
	s.logger.Info("server shutdown complete")
	return nil
}

// pongWait is how long a connection may stay silent before it is dropped.
func (s *Server) pongWait() time.Duration {
	if p := s.config.Live.PingInterval.Std(); p > 0 {
		return p * 2
	}
	return 0
}
