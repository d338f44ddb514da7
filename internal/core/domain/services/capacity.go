package services

import (
	"parcellocker/internal/core/domain/model/kernel"
)

// CapacityViolation is one locker size whose replayed usage exceeds the
// configured compartment count.
type CapacityViolation struct {
	LockerID string
	Size     kernel.Size
	Used     int
	Capacity int
}

// Tally returns a fresh counter holding one replay of all deliveries.
// Calling Tally any number of times yields equal counters.
func (a *Analytics) Tally() *Usage {
	u := NewUsage(a.lockerIDs...)
	a.replay(u)
	return u
}

// CheckCapacity adds one replay of all deliveries to u and then reports,
// in ascending locker and size order, every size whose accumulated usage is
// above the locker's compartment count. Each violation is logged as an error.
//
// Lockers that u tracks but the snapshot does not know are skipped.
func (a *Analytics) CheckCapacity(u *Usage) []CapacityViolation {
	a.replay(u)

	var violations []CapacityViolation
	for _, id := range u.Lockers() {
		l, ok := a.lockers[id]
		if !ok {
			continue
		}
		for _, size := range kernel.Sizes() {
			used, capacity := u.Of(id, size), l.Compartments().Of(size)
			if used <= capacity {
				continue
			}
			a.logger.Error("locker capacity exceeded",
				"locker_id", id, "size", size.String(), "used", used, "capacity", capacity)
			violations = append(violations, CapacityViolation{
				LockerID: id,
				Size:     size,
				Used:     used,
				Capacity: capacity,
			})
		}
	}
	return violations
}

// MostUsedSizes adds one replay of all deliveries to u and returns, per
// tracked locker, every size tied for the highest count. Tied sizes are
// listed in Small, Medium, Large order; a locker with no usage at all lists
// all three.
func (a *Analytics) MostUsedSizes(u *Usage) map[string][]kernel.Size {
	a.replay(u)

	out := make(map[string][]kernel.Size, len(u.counts))
	for _, id := range u.Lockers() {
		best := -1
		for _, size := range kernel.Sizes() {
			best = max(best, u.Of(id, size))
		}
		var sizes []kernel.Size
		for _, size := range kernel.Sizes() {
			if u.Of(id, size) == best {
				sizes = append(sizes, size)
			}
		}
		out[id] = sizes
	}
	return out
}

// replay adds each delivery's parcel size to the counter of its locker.
// Deliveries whose parcel or locker is unknown are skipped with a warning.
func (a *Analytics) replay(u *Usage) {
	for _, d := range a.deliveries {
		p, ok := a.parcels[d.ParcelID()]
		if !ok {
			a.logger.Warn("delivery references unknown parcel", "parcel_id", d.ParcelID(), "locker_id", d.LockerID())
			continue
		}
		if _, ok = a.lockers[d.LockerID()]; !ok {
			a.logger.Warn("delivery references unknown locker", "parcel_id", d.ParcelID(), "locker_id", d.LockerID())
			continue
		}
		u.Add(d.LockerID(), SizeOf(p))
	}
}
