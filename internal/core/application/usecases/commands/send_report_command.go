package commands

import (
	"errors"
	"strings"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrSendReportCommandIsNotConstructed = errors.New(
	"SendReportCommand must be created via NewSendReportCommand constructor",
)

// SendReportCommand regenerates the analytics report and mails it to every
// known user.
type SendReportCommand struct { //nolint:recvcheck //using for validation
	subject string
	body    string

	guard guard.ConstructorGuard
}

// NewSendReportCommand creates the command. The subject is required, the
// body may be empty.
func NewSendReportCommand(subject, body string) (SendReportCommand, error) {
	cmd := SendReportCommand{
		body:  body,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSubject(subject); err != nil {
		return SendReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendReportCommand) Validate() error {
	return c.guard.Validate(ErrSendReportCommandIsNotConstructed)
}

// Subject returns the email subject.
func (c SendReportCommand) Subject() string {
	return c.subject
}

// Body returns the email body.
func (c SendReportCommand) Body() string {
	return c.body
}

func (c *SendReportCommand) setSubject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return errs.NewValueIsRequiredError("subject")
	}

	c.subject = subject
	return nil
}
