package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/01speed1/skg-bot/internal/race"
)

// Pipeline runs one announcement cycle against a race source.
type Pipeline struct {
	source  RaceSource
	sender  Sender
	builder *Builder
	logger  *slog.Logger
}

// NewPipeline wires a pipeline. sender may be nil for read-only use
// (Evaluate, Preview).
func NewPipeline(source RaceSource, sender Sender, builder *Builder, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if builder == nil {
		builder = &Builder{}
	}
	return &Pipeline{source: source, sender: sender, builder: builder, logger: logger}
}

// Evaluate fetches the calendar and decides, for today, which race is next
// and whether it is announced. An empty calendar is not an error: the outcome
// simply has no race.
func (p *Pipeline) Evaluate(ctx context.Context, today race.Date) (Outcome, error) {
	out := Outcome{Today: today}

	races, err := p.source.FetchRaces(ctx)
	if err != nil {
		return out, fmt.Errorf("fetch races: %w", err)
	}

	invalid := race.Invalid(races)
	for _, r := range invalid {
		p.logger.Warn("Skipping race with invalid date",
			"race", r.Name, "key", r.Key(), "date", r.Date)
	}
	out.Skipped = len(invalid)

	next, ok := race.SelectNext(races, today)
	if !ok {
		return out, nil
	}
	// SelectNext only returns races whose date parsed.
	day, _ := next.Day()

	out.Race = &next
	out.RaceDate = day
	out.DaysRemaining = race.DaysUntil(day, today)
	out.Notify = ShouldNotify(out.DaysRemaining)
	return out, nil
}

// Run evaluates today's countdown and sends the announcement when it lands on
// a threshold. Fetch and send failures are returned; "no upcoming race" and
// "not a threshold day" are successful no-ops.
func (p *Pipeline) Run(ctx context.Context, today race.Date) (Outcome, error) {
	out, err := p.Evaluate(ctx, today)
	if err != nil {
		return out, err
	}
	if !out.Found() {
		p.logger.Info("No upcoming race", "today", today)
		return out, nil
	}

	p.logger.Info("Next race countdown",
		"race", out.Race.Name, "date", out.RaceDate, "days", out.DaysRemaining, "notify", out.Notify)
	if !out.Notify {
		return out, nil
	}

	if err := p.send(ctx, *out.Race, out.DaysRemaining); err != nil {
		return out, err
	}
	out.Sent = true
	return out, nil
}

// Announce sends the next-race announcement regardless of the threshold
// policy. Manual trigger path.
func (p *Pipeline) Announce(ctx context.Context, today race.Date) (Outcome, error) {
	out, err := p.Evaluate(ctx, today)
	if err != nil {
		return out, err
	}
	if !out.Found() {
		return out, ErrNoUpcomingRace
	}
	if err := p.send(ctx, *out.Race, out.DaysRemaining); err != nil {
		return out, err
	}
	out.Sent = true
	return out, nil
}

// Preview evaluates today and renders the announcement without sending it.
func (p *Pipeline) Preview(ctx context.Context, today race.Date) (Outcome, Announcement, error) {
	out, err := p.Evaluate(ctx, today)
	if err != nil {
		return out, Announcement{}, err
	}
	if !out.Found() {
		return out, Announcement{}, ErrNoUpcomingRace
	}
	return out, p.builder.Preview(*out.Race, out.DaysRemaining), nil
}

func (p *Pipeline) send(ctx context.Context, r race.Race, days int) error {
	if p.sender == nil {
		return ErrNoSender
	}

	a := p.builder.Build(r, days)
	if !a.HasImage() {
		p.logger.Warn("No flag for country, sending without image",
			"race", r.Name, "country", r.Circuit.Location.Country)
	}

	if err := p.sender.Send(ctx, a); err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}
	p.logger.Info("Announcement sent", "race", r.Name, "days", days)
	return nil
}
