package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/tessera/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tessera.json"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":3000"

	// DefaultQueueSize is the default per-session message queue length.
	DefaultQueueSize = 64

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "tessera"

	// DefaultMetricsPath is the default metrics route.
	DefaultMetricsPath = "/metrics"
)

// Duration is a time.Duration that reads and writes as a string like "30s".
type Duration time.Duration

// UnmarshalJSON accepts a duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON writes the duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the complete tessera.json configuration.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server"`

	// Live contains live session configuration.
	Live LiveConfig `json:"live"`

	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (host:port).
	Addr string `json:"addr,omitempty"`

	// ReadTimeout bounds reading a request.
	ReadTimeout Duration `json:"readTimeout,omitempty"`

	// WriteTimeout bounds writing a non-WebSocket response.
	WriteTimeout Duration `json:"writeTimeout,omitempty"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout Duration `json:"shutdownTimeout,omitempty"`
}

// LiveConfig contains live session settings.
type LiveConfig struct {
	// QueueSize is the number of pending events a session buffers before
	// it reports QueueFull to the client.
	QueueSize int `json:"queueSize,omitempty"`

	// WriteTimeout bounds a single WebSocket write.
	WriteTimeout Duration `json:"writeTimeout,omitempty"`

	// PingInterval is the WebSocket keepalive interval.
	PingInterval Duration `json:"pingInterval,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls the metrics route and reconciler collectors.
	Enabled bool `json:"enabled"`

	// Namespace is the Prometheus namespace.
	Namespace string `json:"namespace,omitempty"`

	// Path is the HTTP route serving metrics.
	Path string `json:"path,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(10 * time.Second),
			ShutdownTimeout: Duration(5 * time.Second),
		},
		Live: LiveConfig{
			QueueSize:    DefaultQueueSize,
			WriteTimeout: Duration(5 * time.Second),
			PingInterval: Duration(30 * time.Second),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
	}
}

// Load reads tessera.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path, applies
// defaults for missing fields and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("T001").
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("T001").
			WithDetail("Failed to parse " + path + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads the nearest tessera.json at or above startDir. Without
// one it returns the defaults.
func Discover(startDir string) (*Config, error) {
	root, ok, err := FindProjectRoot(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return New(), nil
	}
	return Load(root)
}

// FindProjectRoot walks up from startDir to the first directory holding
// tessera.json.
func FindProjectRoot(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}

	for {
		if Exists(dir) {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("T001").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("T001").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = d.Server.WriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Live.QueueSize == 0 {
		c.Live.QueueSize = d.Live.QueueSize
	}
	if c.Live.WriteTimeout == 0 {
		c.Live.WriteTimeout = d.Live.WriteTimeout
	}
	if c.Live.PingInterval == 0 {
		c.Live.PingInterval = d.Live.PingInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return invalid(`"server.addr" must be host:port, got %q`, c.Server.Addr).
			WithSuggestion(`Use a value like ":3000" or "127.0.0.1:8080"`)
	}
	if c.Live.QueueSize < 1 {
		return invalid(`"live.queueSize" must be positive, got %d`, c.Live.QueueSize)
	}
	for name, d := range map[string]Duration{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.writeTimeout":    c.Server.WriteTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
		"live.writeTimeout":      c.Live.WriteTimeout,
		"live.pingInterval":      c.Live.PingInterval,
	} {
		if d < 0 {
			return invalid("%q must not be negative", name)
		}
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return invalid(`"log.level" %v`, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return invalid(`"log.format" must be "text" or "json", got %q`, c.Log.Format)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return invalid(`"metrics.path" must start with "/", got %q`, c.Metrics.Path)
	}
	return nil
}

func invalid(format string, args ...any) *errors.Error {
	return errors.New("T002").WithDetailf(format, args...)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("must be debug, info, warn or error, got %q", s)
	}
	return level, nil
}

// NewLogger builds a slog.Logger writing to w with the configured level
// and format.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
