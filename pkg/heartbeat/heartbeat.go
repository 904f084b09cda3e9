package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/totpqr/pkg/logger"
)

// Job is a unit of work run on every tick with the tick time.
type Job func(ctx context.Context, now time.Time) error

// Heartbeat runs a Job at a fixed rate.
type Heartbeat struct {
	job  Job
	opts options
}

// New returns a Heartbeat running job every interval (DefaultInterval
// unless overridden).
func New(job Job, opts ...Option) (*Heartbeat, error) {
	if job == nil {
		return nil, ErrNilJob
	}

	o := options{
		interval: DefaultInterval,
		logger:   logger.Discard(),
		now:      time.Now,
		name:     "heartbeat",
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return &Heartbeat{job: job, opts: o}, nil
}

// Interval returns the tick period.
func (h *Heartbeat) Interval() time.Duration {
	return h.opts.interval
}

// Run executes the job immediately and then on every tick until ctx is
// cancelled. Job errors and panics are logged and never stop the loop.
// Ticks missed while a job is running are dropped. Run returns ctx.Err().
func (h *Heartbeat) Run(ctx context.Context) error {
	log := h.opts.logger.With(logger.Component(h.opts.name))
	log.InfoContext(ctx, "heartbeat started", logger.Duration(h.opts.interval))

	ticker := time.NewTicker(h.opts.interval)
	defer ticker.Stop()

	h.tick(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "heartbeat stopped")
			return ctx.Err()
		case <-ticker.C:
			h.tick(ctx, log)
		}
	}
}

func (h *Heartbeat) tick(ctx context.Context, log *slog.Logger) {
	if ctx.Err() != nil {
		return
	}
	if err := h.safeRun(ctx, h.opts.now()); err != nil {
		log.ErrorContext(ctx, "heartbeat job failed", logger.Error(err))
	}
}

func (h *Heartbeat) safeRun(ctx context.Context, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return h.job(ctx, now)
}
