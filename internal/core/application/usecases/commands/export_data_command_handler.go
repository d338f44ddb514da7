package commands

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/ports"
)

// ExportDataCommandHandler writes the catalog to a fixed sink.
type ExportDataCommandHandler struct {
	exporter CatalogExporter
	sink     ports.RecordSink
	logger   *slog.Logger
}

// NewExportDataCommandHandler creates a handler exporting to sink.
func NewExportDataCommandHandler(
	exporter CatalogExporter,
	sink ports.RecordSink,
	logger *slog.Logger,
) ExportDataCommandHandler {
	return ExportDataCommandHandler{
		exporter: exporter,
		sink:     sink,
		logger:   logger.With("component", "export_data"),
	}
}

// Handle exports every dataset under its stored filename.
func (h ExportDataCommandHandler) Handle(ctx context.Context, cmd ExportDataCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.exporter.ExportAll(ctx, h.sink); err != nil {
		h.logger.Error("export failed", "error", err)
		return err
	}

	h.logger.Info("datasets exported")
	return nil
}
