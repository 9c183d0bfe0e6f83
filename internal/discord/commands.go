package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/01speed1/skg-bot/internal/notifications"
	"github.com/01speed1/skg-bot/internal/race"
)

const (
	replyPong           = "Pong!"
	replyNoUpcomingRace = "No hay carreras programadas por ahora."
	replyFeedDown       = "No pude consultar el calendario, intenta mas tarde."
)

// Previewer renders the next-race announcement for a day.
type Previewer interface {
	Preview(ctx context.Context, today race.Date) (notifications.Outcome, notifications.Announcement, error)
}

// Commands answers chat commands. It holds no mutable state and is safe to
// call from concurrent gateway handlers.
type Commands struct {
	previewer Previewer
	loc       *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// NewCommands creates the command handler. previewer may be nil, in which
// case only !ping is answered.
func NewCommands(previewer Previewer, loc *time.Location, logger *slog.Logger) *Commands {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Commands{previewer: previewer, loc: loc, now: time.Now, logger: logger}
}

// Reply returns the response to content, or ok=false when content is not a
// known command.
func (c *Commands) Reply(ctx context.Context, content string) (reply *discordgo.MessageSend, ok bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return nil, false
	}

	switch strings.ToLower(fields[0]) {
	case "!ping":
		return &discordgo.MessageSend{Content: replyPong}, true
	case "!next", "!proxima", "!próxima":
		if c.previewer == nil {
			return nil, false
		}
		return c.next(ctx), true
	default:
		return nil, false
	}
}

func (c *Commands) next(ctx context.Context) *discordgo.MessageSend {
	today := race.Today(c.now(), c.loc)
	_, a, err := c.previewer.Preview(ctx, today)
	switch {
	case errors.Is(err, notifications.ErrNoUpcomingRace):
		return &discordgo.MessageSend{Content: replyNoUpcomingRace}
	case err != nil:
		c.logger.Error("Next race command failed", "error", err)
		return &discordgo.MessageSend{Content: replyFeedDown}
	}
	return MessageFor(a)
}
