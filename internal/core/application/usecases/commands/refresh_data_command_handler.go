package commands

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/ports"
)

// RefreshDataCommandHandler runs one refresh cycle. Each cycle is tagged
// with a generated id in the logs.
type RefreshDataCommandHandler struct {
	refresher ports.Refresher
	summaries SummaryRepository
	logger    *slog.Logger
}

// NewRefreshDataCommandHandler creates a handler for refresh cycles.
func NewRefreshDataCommandHandler(
	refresher ports.Refresher,
	summaries SummaryRepository,
	logger *slog.Logger,
) RefreshDataCommandHandler {
	return RefreshDataCommandHandler{
		refresher: refresher,
		summaries: summaries,
		logger:    logger.With("component", "refresh_data"),
	}
}

// Handle refreshes every dataset and then force-rebuilds the purchase
// summary. The summary is rebuilt even when a dataset failed, so it always
// reflects the caches currently held. The refresh error is returned.
func (h RefreshDataCommandHandler) Handle(ctx context.Context, cmd RefreshDataCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	logger := h.logger.With("cycle_id", kernel.NewUUID().String())
	logger.Info("refresh cycle started")

	err := h.refresher.RefreshAll(ctx)
	if err != nil {
		logger.Error("refresh cycle failed", "error", err)
	}

	s := h.summaries.Summary(true)
	logger.Info("refresh cycle completed", "summary_users", s.Len(), "failed", err != nil)

	return err
}
