package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

const replyTimeout = 30 * time.Second

// Bot owns the gateway session and routes chat commands.
type Bot struct {
	session  *discordgo.Session
	commands *Commands
	logger   *slog.Logger
}

// NewBot creates a session for token. The gateway is not opened until Open.
func NewBot(token string, commands *Commands, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	b := &Bot{session: session, commands: commands, logger: logger}
	session.AddHandler(b.onReady)
	if commands != nil {
		session.AddHandler(b.onMessageCreate)
	}
	return b, nil
}

// Open connects to the gateway.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	return b.session.Close()
}

// Sender returns a sender posting to channelID through this session. Sending
// over REST does not require an open gateway.
func (b *Bot) Sender(channelID string) *ChannelSender {
	return NewChannelSender(b.session, channelID, b.logger)
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Discord bot connected", "user", r.User.String(), "guilds", len(r.Guilds))
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	reply, ok := b.commands.Reply(ctx, m.Content)
	if !ok {
		return
	}
	reply.Reference = m.Reference()

	if _, err := s.ChannelMessageSendComplex(m.ChannelID, reply, discordgo.WithContext(ctx)); err != nil {
		b.logger.Error("Command reply failed", "channel", m.ChannelID, "command", m.Content, "error", err)
	}
}
