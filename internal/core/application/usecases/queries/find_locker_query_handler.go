package queries

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/ports"
)

// FindLockerQueryHandler answers FindLockerQuery from the catalog.
type FindLockerQueryHandler struct {
	catalog ports.Catalog
	logger  *slog.Logger
}

// NewFindLockerQueryHandler creates the handler.
func NewFindLockerQueryHandler(catalog ports.Catalog, logger *slog.Logger) FindLockerQueryHandler {
	return FindLockerQueryHandler{catalog: catalog, logger: logger.With("component", "find_locker")}
}

// Handle returns the nearest candidate locker, or the services.ErrLockerNotFound
// error chain when there is none.
func (h FindLockerQueryHandler) Handle(_ context.Context, query FindLockerQuery) (FindLockerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindLockerQueryResponse{}, err
	}

	match, err := newAnalytics(h.catalog, h.logger).FindLocker(query.Email(), query.Parcel())
	if err != nil {
		return FindLockerQueryResponse{}, err
	}

	return FindLockerQueryResponse{
		LockerID:   match.LockerID,
		Size:       query.Parcel().Size().String(),
		Small:      match.Compartments.Small(),
		Medium:     match.Compartments.Medium(),
		Large:      match.Compartments.Large(),
		DistanceKm: match.DistanceKm,
	}, nil
}
