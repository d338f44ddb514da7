// Package smtp delivers notifications by email.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

// Config holds the SMTP submission settings. The connection is upgraded
// with STARTTLS and authenticated with PLAIN.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Configured reports whether every setting needed to send mail is present.
func (c Config) Configured() bool {
	return c.Host != "" && c.Port > 0 && c.Username != "" && c.Password != "" && c.Sender != ""
}

// Notifier sends each message over a fresh SMTP connection.
type Notifier struct {
	client *mail.Client
	sender string
	logger *slog.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier. It does not connect until Send.
func NewNotifier(cfg Config, logger *slog.Logger) (*Notifier, error) {
	if !cfg.Configured() {
		return nil, errors.Join(
			requireSetting("host", cfg.Host),
			requireSetting("username", cfg.Username),
			requireSetting("password", cfg.Password),
			requireSetting("sender", cfg.Sender),
			requirePort(cfg.Port),
		)
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Notifier{
		client: client,
		sender: cfg.Sender,
		logger: logger.With("component", "smtp_notifier"),
	}, nil
}

// Send delivers msg. A non-empty AttachmentPath is attached under its base
// name.
func (n *Notifier) Send(ctx context.Context, msg ports.Message) error {
	m, err := n.build(msg)
	if err != nil {
		return err
	}

	if err = n.client.DialAndSendWithContext(ctx, m); err != nil {
		n.logger.Error("failed to send email", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	n.logger.Info("email sent successfully", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (n *Notifier) build(msg ports.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(n.sender); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("to", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	if msg.AttachmentPath != "" {
		m.AttachFile(msg.AttachmentPath)
	}
	return m, nil
}

func requireSetting(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requirePort(port int) error {
	if port <= 0 || port > 65535 {
		return errs.NewValueIsOutOfRangeError("port", port, 1, 65535)
	}
	return nil
}
