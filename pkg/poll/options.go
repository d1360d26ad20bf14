package poll

import (
	"log/slog"
	"time"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultTimeout  = 100 * time.Second
)

// Config holds environment-driven polling defaults.
type Config struct {
	Interval time.Duration `env:"POLL_INTERVAL" envDefault:"100ms"`
	Timeout  time.Duration `env:"POLL_TIMEOUT" envDefault:"100s"`
}

// Option configures Wait and Delay.
type Option func(*config)

type config struct {
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithInterval sets the pause between two checks.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithTimeout bounds the total time spent polling.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithLogger sets the logger used by Delay. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConfig applies the non-zero durations of cfg.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		if cfg.Interval > 0 {
			c.interval = cfg.Interval
		}
		if cfg.Timeout > 0 {
			c.timeout = cfg.Timeout
		}
	}
}
