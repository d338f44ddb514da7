package services

import (
	"cmp"
	"slices"
)

// FarthestParty is a frequent sender or receiver together with the known
// locker farthest from them.
type FarthestParty struct {
	Email      string
	Deliveries int

	// FarthestLocker is empty when no locker lies at a positive distance.
	FarthestLocker string
	MaxDistanceKm  float64
}

// PartyRanking holds the top senders and the top receivers, most active first.
type PartyRanking struct {
	Senders   []FarthestParty
	Receivers []FarthestParty
}

// LongestDelivery is the sender whose slowest delivery took the most days.
type LongestDelivery struct {
	SenderEmail string
	Days        int
}

// TopParties ranks sender emails and receiver emails independently by the
// number of deliveries, keeps the first n of each and resolves, for every
// kept email, the locker with the greatest geodesic distance from the user.
//
// Ranking ties are broken by ascending email. Emails without a known user
// are dropped with a warning, so a side may hold fewer than n entries.
func (a *Analytics) TopParties(n int) PartyRanking {
	senders := make(map[string]int)
	receivers := make(map[string]int)
	for _, d := range a.deliveries {
		senders[d.SenderEmail()]++
		receivers[d.ReceiverEmail()]++
	}

	return PartyRanking{
		Senders:   a.farthest(mostCommon(senders, n)),
		Receivers: a.farthest(mostCommon(receivers, n)),
	}
}

// LongestDelivery returns the sender with the globally largest delivery
// duration. Among senders sharing that duration the smallest email wins.
// The second result is false when there are no deliveries.
func (a *Analytics) LongestDelivery() (LongestDelivery, bool) {
	longest := make(map[string]int)
	for _, d := range a.deliveries {
		days := d.DurationDays()
		if cur, ok := longest[d.SenderEmail()]; !ok || days > cur {
			longest[d.SenderEmail()] = days
		}
	}

	if len(longest) == 0 {
		a.logger.Warn("no deliveries to compute the longest delivery from")
		return LongestDelivery{}, false
	}

	var best LongestDelivery
	found := false
	for sender, days := range longest {
		if !found || days > best.Days || (days == best.Days && sender < best.SenderEmail) {
			best = LongestDelivery{SenderEmail: sender, Days: days}
			found = true
		}
	}
	return best, true
}

type emailCount struct {
	email string
	count int
}

func mostCommon(counts map[string]int, n int) []emailCount {
	if n <= 0 {
		return nil
	}

	ranked := make([]emailCount, 0, len(counts))
	for email, count := range counts {
		ranked = append(ranked, emailCount{email: email, count: count})
	}
	slices.SortFunc(ranked, func(x, y emailCount) int {
		if c := cmp.Compare(y.count, x.count); c != 0 {
			return c
		}
		return cmp.Compare(x.email, y.email)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (a *Analytics) farthest(ranked []emailCount) []FarthestParty {
	out := make([]FarthestParty, 0, len(ranked))
	for _, rc := range ranked {
		u, ok := a.users[rc.email]
		if !ok {
			a.logger.Warn("no user found, skipping", "email", rc.email)
			continue
		}

		party := FarthestParty{Email: rc.email, Deliveries: rc.count}
		for _, id := range a.lockerIDs {
			dist, err := u.Location().DistanceKm(a.lockers[id].Location())
			if err != nil {
				a.logger.Warn("distance to locker failed", "email", rc.email, "locker_id", id, "error", err)
				continue
			}
			if dist > party.MaxDistanceKm {
				party.MaxDistanceKm = dist
				party.FarthestLocker = id
			}
		}
		out = append(out, party)
	}
	return out
}
