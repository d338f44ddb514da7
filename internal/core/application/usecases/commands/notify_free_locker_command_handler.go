package commands

import (
	"context"
	"fmt"
	"log/slog"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/ports"
)

const (
	FreeLockerSubject = "information about locker"
	ReceiverSubject   = "package"
)

// NotifyFreeLockerCommandHandler finds a locker through the analytics
// service and sends the two notifications about it.
type NotifyFreeLockerCommandHandler struct {
	catalog  ports.Catalog
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewNotifyFreeLockerCommandHandler creates the handler.
func NewNotifyFreeLockerCommandHandler(
	catalog ports.Catalog,
	notifier ports.Notifier,
	logger *slog.Logger,
) NotifyFreeLockerCommandHandler {
	return NotifyFreeLockerCommandHandler{
		catalog:  catalog,
		notifier: notifier,
		logger:   logger.With("component", "notify_free_locker"),
	}
}

// Handle sends the user the locker id and its compartment counts. When a
// delivery was routed through that locker, the receiver of the last such
// delivery is told when the package can be picked up.
//
// When no locker is found nothing is sent and the error from
// services.Analytics.FindLocker is returned.
func (h NotifyFreeLockerCommandHandler) Handle(ctx context.Context, cmd NotifyFreeLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	analytics := newAnalytics(h.catalog, h.logger)

	match, err := analytics.FindLocker(cmd.Email(), cmd.Parcel())
	if err != nil {
		return err
	}

	c := match.Compartments
	if err = h.notifier.Send(ctx, ports.Message{
		To:      cmd.Email(),
		Subject: FreeLockerSubject,
		Body: fmt.Sprintf(
			"locker %s is ,status of the compartments small: %d, medium: %d, large: %d, you can send your packed there",
			match.LockerID, c.Small(), c.Medium(), c.Large(),
		),
	}); err != nil {
		return err
	}

	last, ok := analytics.LastDeliveryAt(match.LockerID)
	if !ok {
		h.logger.Info("package is not in locker yet", "locker_id", match.LockerID)
		return nil
	}

	return h.notifier.Send(ctx, ports.Message{
		To:      last.ReceiverEmail(),
		Subject: ReceiverSubject,
		Body: fmt.Sprintf(
			"package is send to you, you will be able to pick it up in %s",
			last.ExpectedDeliveryDate().Format(delivery.DateLayout),
		),
	})
}
