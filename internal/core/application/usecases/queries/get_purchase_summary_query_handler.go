package queries

import (
	"cmp"
	"context"
	"slices"

	"parcellocker/internal/core/application/summary"
	"parcellocker/internal/core/domain/model/delivery"
)

// PurchaseSummaries hands out the memoized purchase summary.
type PurchaseSummaries interface {
	Summary(forceRefresh bool) *summary.Summary
}

// GetPurchaseSummaryQueryHandler reads the summary built by the last
// refresh cycle. It never forces a rebuild.
type GetPurchaseSummaryQueryHandler struct {
	summaries PurchaseSummaries
}

func NewGetPurchaseSummaryQueryHandler(summaries PurchaseSummaries) GetPurchaseSummaryQueryHandler {
	return GetPurchaseSummaryQueryHandler{summaries: summaries}
}

func (h GetPurchaseSummaryQueryHandler) Handle(
	_ context.Context,
	query GetPurchaseSummaryQuery,
) (GetPurchaseSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseSummaryQueryResponse{}, err
	}

	s := h.summaries.Summary(false)

	res := GetPurchaseSummaryQueryResponse{Senders: []SenderSummary{}}
	for _, u := range s.Users() {
		sender := SenderSummary{Email: u.Email(), Name: u.Name(), Surname: u.Surname()}
		for d, n := range s.Deliveries(u) {
			sender.Deliveries = append(sender.Deliveries, SentDelivery{
				ParcelID:             d.ParcelID(),
				LockerID:             d.LockerID(),
				ReceiverEmail:        d.ReceiverEmail(),
				SentDate:             d.SentDate().Format(delivery.DateLayout),
				ExpectedDeliveryDate: d.ExpectedDeliveryDate().Format(delivery.DateLayout),
				Count:                n,
			})
		}
		slices.SortFunc(sender.Deliveries, compareSent)
		res.Senders = append(res.Senders, sender)
	}

	return res, nil
}

// compareSent orders by sent date, then by the remaining attributes so the
// order is total.
func compareSent(a, b SentDelivery) int {
	return cmp.Or(
		cmp.Compare(a.SentDate, b.SentDate),
		cmp.Compare(a.ParcelID, b.ParcelID),
		cmp.Compare(a.LockerID, b.LockerID),
		cmp.Compare(a.ReceiverEmail, b.ReceiverEmail),
		cmp.Compare(a.ExpectedDeliveryDate, b.ExpectedDeliveryDate),
	)
}
