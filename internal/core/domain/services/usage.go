package services

import (
	"slices"

	"parcellocker/internal/core/domain/model/kernel"
)

// Usage counts replayed deliveries per locker and per compartment size.
//
// Usage is owned by the caller. Analytics methods that replay deliveries add
// to the counter they are given, so passing the same Usage twice doubles
// every count. Call Reset, or ask Analytics.Tally for a fresh counter, to
// start from zero.
type Usage struct {
	counts map[string][kernel.SizeCount]int
}

// NewUsage creates a counter holding a zero count for every size of every
// locker in lockerIDs.
func NewUsage(lockerIDs ...string) *Usage {
	u := &Usage{counts: make(map[string][kernel.SizeCount]int, len(lockerIDs))}
	for _, id := range lockerIDs {
		u.counts[id] = [kernel.SizeCount]int{}
	}
	return u
}

// Add increments the count of size in lockerID. Invalid sizes are ignored.
func (u *Usage) Add(lockerID string, size kernel.Size) {
	i := size.Index()
	if i < 0 {
		return
	}
	c := u.counts[lockerID]
	c[i]++
	u.counts[lockerID] = c
}

// Of returns the count of size in lockerID, 0 when either is unknown.
func (u *Usage) Of(lockerID string, size kernel.Size) int {
	i := size.Index()
	if i < 0 {
		return 0
	}
	return u.counts[lockerID][i]
}

// Total returns the sum of all sizes counted for lockerID.
func (u *Usage) Total(lockerID string) int {
	total := 0
	for _, n := range u.counts[lockerID] {
		total += n
	}
	return total
}

// Lockers returns the tracked locker identifiers in ascending order.
func (u *Usage) Lockers() []string {
	ids := make([]string, 0, len(u.counts))
	for id := range u.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Reset sets every count back to zero. Tracked lockers stay tracked.
func (u *Usage) Reset() {
	for id := range u.counts {
		u.counts[id] = [kernel.SizeCount]int{}
	}
}
