package email

import (
	"context"
	"log/slog"

	"github.com/SscSPs/docorbit_backend/internal/core/domain"
)

// LogMailer records outgoing mail in the log instead of delivering it. Bodies carry
// reset links and codes, so only the envelope is logged.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	m.logger.InfoContext(ctx, "email delivery skipped, no SMTP relay configured",
		"to", msg.To,
		"subject", msg.Subject,
		"content_type", msg.ContentType,
		"body_bytes", len(msg.Body),
	)
	return nil
}
