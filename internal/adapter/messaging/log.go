package messaging

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the log instead of delivering them.
// It is the default driver for local development.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "log_sender")}
}

// Send logs the message at info level.
func (s *LogSender) Send(ctx context.Context, phone, text string) error {
	s.log.InfoContext(ctx, "agenda message",
		slog.String("to", phone),
		slog.String("message", text))
	return nil
}
