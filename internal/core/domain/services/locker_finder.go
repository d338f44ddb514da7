package services

import (
	"errors"
	"fmt"
	"math"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"
)

// ErrLockerNotFound is returned by FindLocker when the user is unknown or no
// active locker has a free compartment of the parcel's size.
var ErrLockerNotFound = errors.New("locker not found")

// LockerMatch is the locker recommended for a parcel.
type LockerMatch struct {
	LockerID     string
	Compartments kernel.SizeCounts
	DistanceKm   float64
}

// FindLocker recommends the locker nearest to the user identified by email
// that can take parcel p.
//
// A locker is a candidate when it has at least one compartment of the
// parcel's size and at least one delivery references it. Candidates are
// visited in ascending identifier order and only a strictly shorter distance
// replaces the current best, so the smallest identifier wins a tie.
//
// Returns:
//   - LockerMatch: the chosen locker with its configured compartment counts
//   - error: ErrLockerNotFound (wrapping errs.ErrObjectNotFound for an unknown user)
func (a *Analytics) FindLocker(email string, p parcel.Parcel) (LockerMatch, error) {
	u, ok := a.users[email]
	if !ok {
		a.logger.Error("email is incorrect or not found", "email", email)
		return LockerMatch{}, fmt.Errorf("%w: %w", ErrLockerNotFound, errs.NewObjectNotFoundError("email", email))
	}

	size := SizeOf(p)
	best := LockerMatch{DistanceKm: math.Inf(1)}

	for _, id := range a.lockerIDs {
		l := a.lockers[id]
		if !l.HasFreeCompartment(size) || !a.IsActive(id) {
			continue
		}

		dist, err := u.Location().DistanceKm(l.Location())
		if err != nil {
			a.logger.Warn("distance to locker failed", "email", email, "locker_id", id, "error", err)
			continue
		}

		if dist < best.DistanceKm {
			best = LockerMatch{LockerID: id, Compartments: l.Compartments(), DistanceKm: dist}
		}
	}

	if best.LockerID == "" {
		a.logger.Error("no locker found for parcel size", "email", email, "size", size.String())
		return LockerMatch{}, ErrLockerNotFound
	}

	return best, nil
}
