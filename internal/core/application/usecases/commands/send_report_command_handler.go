package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// SendReportCommandHandler renders the report to a file and sends the file
// as an attachment.
type SendReportCommandHandler struct {
	catalog    ports.Catalog
	renderer   ports.ReportRenderer
	notifier   ports.Notifier
	reportPath string
	logger     *slog.Logger
}

// NewSendReportCommandHandler creates the handler. reportPath is where the
// report file is written before sending.
func NewSendReportCommandHandler(
	catalog ports.Catalog,
	renderer ports.ReportRenderer,
	notifier ports.Notifier,
	reportPath string,
	logger *slog.Logger,
) (SendReportCommandHandler, error) {
	if reportPath == "" {
		return SendReportCommandHandler{}, errs.NewValueIsRequiredError("reportPath")
	}

	return SendReportCommandHandler{
		catalog:    catalog,
		renderer:   renderer,
		notifier:   notifier,
		reportPath: reportPath,
		logger:     logger.With("component", "send_report"),
	}, nil
}

// Handle writes the report and then sends one message per user. A failed
// send does not stop the remaining ones; all send failures are returned
// joined.
func (h SendReportCommandHandler) Handle(ctx context.Context, cmd SendReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	analytics := newAnalytics(h.catalog, h.logger)
	if err := h.renderer.RenderFile(h.reportPath, analytics); err != nil {
		return err
	}
	h.logger.Info("report has been saved", "path", h.reportPath)

	var sendErrs []error
	for _, email := range analytics.UserEmails() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := h.notifier.Send(ctx, ports.Message{
			To:             email,
			Subject:        cmd.Subject(),
			Body:           cmd.Body(),
			AttachmentPath: h.reportPath,
		})
		if err != nil {
			h.logger.Error("failed to send report", "to", email, "error", err)
			sendErrs = append(sendErrs, err)
		}
	}

	return errors.Join(sendErrs...)
}
