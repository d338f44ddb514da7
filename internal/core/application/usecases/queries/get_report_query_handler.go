package queries

import (
	"context"
	"log/slog"
	"strings"

	"parcellocker/internal/core/ports"
)

// GetReportQueryHandler renders the report in memory.
type GetReportQueryHandler struct {
	catalog  ports.Catalog
	renderer ports.ReportRenderer
	logger   *slog.Logger
}

// NewGetReportQueryHandler creates the handler.
func NewGetReportQueryHandler(
	catalog ports.Catalog,
	renderer ports.ReportRenderer,
	logger *slog.Logger,
) GetReportQueryHandler {
	return GetReportQueryHandler{
		catalog:  catalog,
		renderer: renderer,
		logger:   logger.With("component", "get_report"),
	}
}

// Handle returns the report text.
func (h GetReportQueryHandler) Handle(_ context.Context, query GetReportQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := h.renderer.Render(&sb, newAnalytics(h.catalog, h.logger)); err != nil {
		return "", err
	}

	return sb.String(), nil
}
