package http

import (
	"parcellocker/internal/core/application/usecases/queries"
)

func toStatistics(res queries.GetStatisticsQueryResponse) Statistics {
	out := Statistics{
		ParcelSizes:   make([]ParcelSize, 0, len(res.ParcelSizes)),
		Usage:         make([]LockerUsage, 0, len(res.Usage)),
		Violations:    make([]CapacityViolation, 0, len(res.Violations)),
		MostUsedSizes: make([]LockerSizes, 0, len(res.MostUsedSizes)),
		TopSenders:    toParties(res.TopSenders),
		TopReceivers:  toParties(res.TopReceivers),
	}

	for _, p := range res.ParcelSizes {
		out.ParcelSizes = append(out.ParcelSizes, ParcelSize(p))
	}
	for _, u := range res.Usage {
		out.Usage = append(out.Usage, LockerUsage(u))
	}
	for _, v := range res.Violations {
		out.Violations = append(out.Violations, CapacityViolation(v))
	}
	for _, ls := range res.MostUsedSizes {
		out.MostUsedSizes = append(out.MostUsedSizes, LockerSizes(ls))
	}
	if res.LongestDelivery != nil {
		ld := LongestDelivery(*res.LongestDelivery)
		out.LongestDelivery = &ld
	}

	return out
}

func toParties(parties []queries.Party) []Party {
	out := make([]Party, 0, len(parties))
	for _, p := range parties {
		out = append(out, Party(p))
	}
	return out
}

func toPurchaseSummary(res queries.GetPurchaseSummaryQueryResponse) PurchaseSummary {
	out := PurchaseSummary{Senders: make([]SenderSummary, 0, len(res.Senders))}
	for _, s := range res.Senders {
		sender := SenderSummary{
			Email:      s.Email,
			Name:       s.Name,
			Surname:    s.Surname,
			Deliveries: make([]SentDelivery, 0, len(s.Deliveries)),
		}
		for _, d := range s.Deliveries {
			sender.Deliveries = append(sender.Deliveries, SentDelivery(d))
		}
		out.Senders = append(out.Senders, sender)
	}
	return out
}
