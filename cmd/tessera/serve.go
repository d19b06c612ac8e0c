package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tessera/internal/demo"
	"github.com/vango-dev/tessera/pkg/live"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		logLevel  string
		logFormat string
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo as a live document",
		Long: `Serve the demo over HTTP and WebSocket.

Settings come from tessera.json; flags override them.

Examples:
  tessera serve
  tessera serve --addr=:8080 --log-level=debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}
			if noMetrics {
				cfg.Metrics.Enabled = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cfg.Log.NewLogger(cmd.ErrOrStderr())
			if p := cfg.Path(); p != "" {
				logger.Info("config loaded", "path", p)
			}

			app := func() live.RenderFunc {
				return demo.New().Render
			}
			srv := live.NewServer(app, cfg, live.WithLogger(logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", displayAddr(cfg.Server.Addr))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from tessera.json)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable the metrics route")

	return cmd
}

// displayAddr turns ":3000" into "localhost:3000".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
