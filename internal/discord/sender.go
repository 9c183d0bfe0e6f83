package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/01speed1/skg-bot/internal/notifications"
)

// messageSender is the slice of *discordgo.Session used to post messages.
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelSender posts announcements to one channel.
type ChannelSender struct {
	session   messageSender
	channelID string
	logger    *slog.Logger
}

var _ notifications.Sender = (*ChannelSender)(nil)

// NewChannelSender creates a sender for channelID over session.
func NewChannelSender(session messageSender, channelID string, logger *slog.Logger) *ChannelSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChannelSender{session: session, channelID: channelID, logger: logger}
}

// Send posts the announcement. No retries.
func (s *ChannelSender) Send(ctx context.Context, a notifications.Announcement) error {
	msg, err := s.session.ChannelMessageSendComplex(s.channelID, MessageFor(a), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord channel %s: %w", s.channelID, err)
	}
	s.logger.Debug("Discord message posted", "channel", s.channelID, "message_id", msg.ID)
	return nil
}
