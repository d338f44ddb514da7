package queries

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
)

// GetStatisticsQueryHandler computes the statistics read model.
type GetStatisticsQueryHandler struct {
	catalog ports.Catalog
	logger  *slog.Logger
}

// NewGetStatisticsQueryHandler creates the handler.
func NewGetStatisticsQueryHandler(catalog ports.Catalog, logger *slog.Logger) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{catalog: catalog, logger: logger.With("component", "get_statistics")}
}

// Handle takes one snapshot of the catalog and derives every figure from it.
func (h GetStatisticsQueryHandler) Handle(_ context.Context, query GetStatisticsQuery) (GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	a := newAnalytics(h.catalog, h.logger)
	res := GetStatisticsQueryResponse{}

	for _, p := range a.Parcels() {
		res.ParcelSizes = append(res.ParcelSizes, ParcelSize{ParcelID: p.ID(), Size: services.SizeOf(p).String()})
	}

	tally := a.Tally()
	for _, id := range tally.Lockers() {
		res.Usage = append(res.Usage, LockerUsage{
			LockerID: id,
			Small:    tally.Of(id, kernel.Small),
			Medium:   tally.Of(id, kernel.Medium),
			Large:    tally.Of(id, kernel.Large),
			Total:    tally.Total(id),
		})
	}

	counter := services.NewUsage(a.LockerIDs()...)
	for _, v := range a.CheckCapacity(counter) {
		res.Violations = append(res.Violations, CapacityViolation{
			LockerID: v.LockerID,
			Size:     v.Size.String(),
			Used:     v.Used,
			Capacity: v.Capacity,
		})
	}

	counter.Reset()
	mostUsed := a.MostUsedSizes(counter)
	for _, id := range counter.Lockers() {
		ls := LockerSizes{LockerID: id}
		for _, size := range mostUsed[id] {
			ls.Sizes = append(ls.Sizes, size.String())
		}
		res.MostUsedSizes = append(res.MostUsedSizes, ls)
	}

	ranking := a.TopParties(query.Top())
	res.TopSenders = toParties(ranking.Senders)
	res.TopReceivers = toParties(ranking.Receivers)

	if longest, ok := a.LongestDelivery(); ok {
		res.LongestDelivery = &LongestDelivery{SenderEmail: longest.SenderEmail, Days: longest.Days}
	}

	return res, nil
}

func toParties(ranked []services.FarthestParty) []Party {
	parties := make([]Party, 0, len(ranked))
	for _, p := range ranked {
		parties = append(parties, Party{
			Email:          p.Email,
			Deliveries:     p.Deliveries,
			FarthestLocker: p.FarthestLocker,
			MaxDistanceKm:  p.MaxDistanceKm,
		})
	}
	return parties
}
