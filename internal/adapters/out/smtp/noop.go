package smtp

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/ports"
)

// Noop logs messages instead of sending them. It stands in for Notifier
// when SMTP is not configured.
type Noop struct {
	logger *slog.Logger
}

var _ ports.Notifier = (*Noop)(nil)

func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{logger: logger.With("component", "noop_notifier")}
}

func (n *Noop) Send(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.Info("smtp not configured, email not sent",
		"to", msg.To, "subject", msg.Subject, "attachment", msg.AttachmentPath)
	return nil
}
