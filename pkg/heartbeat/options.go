package heartbeat

import (
	"log/slog"
	"time"
)

// DefaultInterval is the tick period used when no interval is configured.
const DefaultInterval = time.Second

// Config holds heartbeat settings loaded from the environment.
type Config struct {
	Interval time.Duration `env:"HEARTBEAT_INTERVAL" envDefault:"1s"`
}

// Option configures a Heartbeat.
type Option func(*options)

type options struct {
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	name     string
}

// WithInterval sets the tick period. New rejects non-positive values.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithLogger sets the logger used for lifecycle and job failure records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source passed to every job run.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithName labels log records of this heartbeat.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// FromConfig converts cfg into options. A zero interval keeps the default.
func FromConfig(cfg Config) []Option {
	if cfg.Interval == 0 {
		return nil
	}
	return []Option{WithInterval(cfg.Interval)}
}
