// Package scheduler drives the daily announcement check: sleep until the next
// wall-clock target, evaluate one cycle, repeat until the context ends.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/01speed1/skg-bot/internal/notifications"
	"github.com/01speed1/skg-bot/internal/race"
)

// fallbackWake is used when the schedule yields no future activation.
const fallbackWake = 24 * time.Hour

// Cycle is one evaluation for a given calendar day.
type Cycle interface {
	Run(ctx context.Context, today race.Date) (notifications.Outcome, error)
}

// SleepFunc blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures a Scheduler. Zero values fall back to the real clock,
// a timer-based sleep and time.Local.
type Options struct {
	Spec     string
	Location *time.Location
	Now      func() time.Time
	Sleep    SleepFunc
}

// Scheduler runs a Cycle once per schedule activation.
type Scheduler struct {
	cycle    Cycle
	schedule cron.Schedule
	spec     string
	loc      *time.Location
	now      func() time.Time
	sleep    SleepFunc
	logger   *slog.Logger
}

// New parses opts.Spec as a standard five-field cron expression.
func New(cycle Cycle, opts Options, logger *slog.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(opts.Spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", opts.Spec, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cycle:    cycle,
		schedule: schedule,
		spec:     opts.Spec,
		loc:      opts.Location,
		now:      opts.Now,
		sleep:    opts.Sleep,
		logger:   logger,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.sleep == nil {
		s.sleep = sleepContext
	}
	return s, nil
}

// NextWakeAt returns the first activation strictly after now, in the
// scheduler's location.
func (s *Scheduler) NextWakeAt(now time.Time) time.Time {
	next := s.schedule.Next(now.In(s.loc))
	if next.IsZero() || !next.After(now) {
		return now.Add(fallbackWake).In(s.loc)
	}
	return next.In(s.loc)
}

// NextWake returns how long to sleep from now. Always positive; at exactly
// the target time it is a full day.
func (s *Scheduler) NextWake(now time.Time) time.Duration {
	return s.NextWakeAt(now).Sub(now)
}

// RunOnce evaluates a single cycle for the current day in the scheduler's
// location. Errors are logged and returned.
func (s *Scheduler) RunOnce(ctx context.Context) (notifications.Outcome, error) {
	today := race.Today(s.now(), s.loc)
	out, err := s.cycle.Run(ctx, today)
	if err != nil {
		s.logger.Error("Announcement cycle failed", "today", today, "error", err)
		return out, err
	}
	if out.Sent {
		s.logger.Info("Announcement cycle complete", "today", today, "race", out.Race.Name, "days", out.DaysRemaining)
	} else {
		s.logger.Debug("Announcement cycle complete, nothing sent", "today", today)
	}
	return out, nil
}

// Run blocks until ctx is cancelled. Each iteration sleeps until the next
// activation and then runs one cycle; a failed cycle never stops the loop.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Scheduler started", "schedule", s.spec, "timezone", s.loc.String())

	// lastWake keeps a wall clock that lags the sleep timer from landing
	// before the activation just served and re-running the same day.
	var lastWake time.Time
	for {
		now := s.now()
		wakeAt := s.NextWakeAt(later(now, lastWake))
		wait := wakeAt.Sub(now)
		lastWake = wakeAt
		s.logger.Info("Waiting for next check", "wake_at", wakeAt.Format(time.RFC3339), "in", wait.Round(time.Second))

		if err := s.sleep(ctx, wait); err != nil {
			s.logger.Info("Scheduler stopped")
			return
		}
		if ctx.Err() != nil {
			s.logger.Info("Scheduler stopped")
			return
		}

		s.RunOnce(ctx)
	}
}

func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
