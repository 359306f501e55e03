// Package scheduler runs the alert checker on a fixed interval and hands
// the triggered alerts to the notifier.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/price-radar/internal/metrics"
	"github.com/Houeta/price-radar/internal/models"
	"github.com/robfig/cron/v3"
)

// ErrInvalidInterval is returned by Start for a non-positive interval.
var ErrInvalidInterval = errors.New("check interval must be positive")

// Checker evaluates the stored alerts and remembers which ones were delivered.
type Checker interface {
	CheckAlerts(ctx context.Context) ([]models.Trigger, error)
	MarkNotified(triggers []models.Trigger)
}

// Notifier delivers triggered alerts and returns the ones that got through.
type Notifier interface {
	NotifyTriggers(ctx context.Context, triggers []models.Trigger) ([]models.Trigger, error)
}

type Scheduler struct {
	log      *slog.Logger
	cron     *cron.Cron
	checker  Checker
	notifier Notifier
	metrics  *metrics.Metrics
}

// New creates a Scheduler. A run still in progress when the next one is due
// makes the next one skip.
func New(log *slog.Logger, checker Checker, notifier Notifier, m *metrics.Metrics) *Scheduler {
	logger := cronLogger{log: log.With("component", "cron")}

	return &Scheduler{
		log:      log,
		cron:     cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		checker:  checker,
		notifier: notifier,
		metrics:  m,
	}
}

// Start schedules RunOnce every interval. Runs use ctx, so cancelling it
// aborts a check in progress.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	const opn = "scheduler.Start"

	if interval <= 0 {
		return fmt.Errorf("%s: %w: %s", opn, ErrInvalidInterval, interval)
	}

	s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() {
		if err := s.RunOnce(ctx); err != nil {
			s.log.ErrorContext(ctx, "Scheduled alert check failed", "op", opn, "error", err)
		}
	}))
	s.cron.Start()

	s.log.InfoContext(ctx, "Alert checks scheduled", "op", opn, "interval", interval)

	return nil
}

// Stop waits for a running check to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Alert scheduler stopped")
}

// RunOnce checks every alert and notifies the triggered ones. Triggers found
// before a checker error are still delivered. Only delivered triggers are
// marked, so the rest come up again on the next run.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	const opn = "scheduler.RunOnce"

	start := time.Now()
	triggers, checkErr := s.checker.CheckAlerts(ctx)
	s.metrics.ObserveCheck(time.Since(start), len(triggers), checkErr)

	var notifyErr error
	if len(triggers) > 0 {
		var delivered []models.Trigger
		delivered, notifyErr = s.notifier.NotifyTriggers(ctx, triggers)
		if len(delivered) > 0 {
			s.checker.MarkNotified(delivered)
		}
	}

	if err := errors.Join(checkErr, notifyErr); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

// cronLogger routes cron's own logging to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
