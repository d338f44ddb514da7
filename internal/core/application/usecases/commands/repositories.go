// Package commands contains the state-changing operations of the parcel
// locker service: reloading the datasets, exporting them and sending
// notifications.
package commands

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/application/summary"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
)

// SummaryRepository rebuilds the purchase summary on demand.
type SummaryRepository interface {
	Summary(forceRefresh bool) *summary.Summary
}

// CatalogExporter writes every cached dataset to a sink.
type CatalogExporter interface {
	ExportAll(ctx context.Context, sink ports.RecordSink) error
}

func newAnalytics(catalog ports.Catalog, logger *slog.Logger) *services.Analytics {
	s := catalog.Snapshot()
	return services.NewAnalytics(s.Users, s.Parcels, s.Lockers, s.Deliveries, logger)
}
