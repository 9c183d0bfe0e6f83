package notifications

import (
	"context"
	"log/slog"
)

//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=notifications

// Sender delivers an announcement to the configured channel.
type Sender interface {
	Send(ctx context.Context, a Announcement) error
}

// LogSender writes announcements to the log instead of delivering them.
// Used for dry runs.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a dry-run sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the announcement and never fails.
func (s *LogSender) Send(_ context.Context, a Announcement) error {
	attrs := []any{"title", a.Title, "content", a.Content, "image", a.ImageURL}
	for _, f := range a.Fields {
		attrs = append(attrs, f.Name, f.Value)
	}
	s.logger.Info("Announcement (dry run)", attrs...)
	return nil
}
