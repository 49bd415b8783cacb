package email

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a single HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogSender records outgoing mail server-side without delivering it. Used when
// SMTP is not configured, e.g. local development.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, _ string) error {
	if s.logger != nil {
		s.logger.Info("email delivery skipped (smtp not configured)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
	}
	return nil
}
