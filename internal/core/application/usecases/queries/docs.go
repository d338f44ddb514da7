// Package queries contains the read operations of the parcel locker service.
// Each handler takes a fresh analytics snapshot of the catalog and returns a
// read model shaped for its caller.
package queries

import (
	"log/slog"

	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
)

func newAnalytics(catalog ports.Catalog, logger *slog.Logger) *services.Analytics {
	s := catalog.Snapshot()
	return services.NewAnalytics(s.Users, s.Parcels, s.Lockers, s.Deliveries, logger)
}
