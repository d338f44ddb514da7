package services

import (
	"log/slog"
	"slices"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/domain/model/user"
)

// Analytics is a read-only snapshot of every entity kind, indexed for the
// statistics and search operations of this package.
//
// Entities sharing an identifier collapse onto the last one seen. Deliveries
// are kept as a list in source order.
//
// Example:
//
//	a := services.NewAnalytics(users, parcels, lockers, deliveries, logger)
//	usage := a.Tally()
//	violations := a.CheckCapacity(services.NewUsage(a.LockerIDs()...))
//	match, err := a.FindLocker("john.doe@gmail.com", p)
type Analytics struct {
	users      map[string]user.User
	emails     []string
	parcels    map[string]parcel.Parcel
	parcelIDs  []string
	lockers    map[string]locker.Locker
	lockerIDs  []string
	deliveries []delivery.Delivery

	// lastDelivery maps each active locker to the last delivery routed through it.
	lastDelivery map[string]delivery.Delivery

	logger *slog.Logger
}

// NewAnalytics builds a snapshot from the given entities.
func NewAnalytics(
	users []user.User,
	parcels []parcel.Parcel,
	lockers []locker.Locker,
	deliveries []delivery.Delivery,
	logger *slog.Logger,
) *Analytics {
	a := &Analytics{
		users:        make(map[string]user.User, len(users)),
		parcels:      make(map[string]parcel.Parcel, len(parcels)),
		lockers:      make(map[string]locker.Locker, len(lockers)),
		deliveries:   slices.Clone(deliveries),
		lastDelivery: make(map[string]delivery.Delivery),
		logger:       logger.With("component", "analytics"),
	}

	for _, u := range users {
		if _, ok := a.users[u.Email()]; !ok {
			a.emails = append(a.emails, u.Email())
		}
		a.users[u.Email()] = u
	}
	for _, p := range parcels {
		if _, ok := a.parcels[p.ID()]; !ok {
			a.parcelIDs = append(a.parcelIDs, p.ID())
		}
		a.parcels[p.ID()] = p
	}
	for _, l := range lockers {
		a.lockers[l.ID()] = l
	}
	for id := range a.lockers {
		a.lockerIDs = append(a.lockerIDs, id)
	}
	slices.Sort(a.lockerIDs)

	for _, d := range a.deliveries {
		a.lastDelivery[d.LockerID()] = d
	}

	return a
}

// SizeOf classifies p into its compartment size.
func SizeOf(p parcel.Parcel) kernel.Size {
	return p.Size()
}

// Parcels returns the known parcels in first-seen order.
func (a *Analytics) Parcels() []parcel.Parcel {
	out := make([]parcel.Parcel, 0, len(a.parcelIDs))
	for _, id := range a.parcelIDs {
		out = append(out, a.parcels[id])
	}
	return out
}

// Parcel looks a parcel up by identifier.
func (a *Analytics) Parcel(id string) (parcel.Parcel, bool) {
	p, ok := a.parcels[id]
	return p, ok
}

// UserEmails returns the known user emails in first-seen order.
func (a *Analytics) UserEmails() []string {
	return slices.Clone(a.emails)
}

// LockerIDs returns the known locker identifiers in ascending order.
func (a *Analytics) LockerIDs() []string {
	return slices.Clone(a.lockerIDs)
}

// Deliveries returns the deliveries in source order.
func (a *Analytics) Deliveries() []delivery.Delivery {
	return slices.Clone(a.deliveries)
}

// LastDeliveryAt returns the last delivery routed through lockerID.
// The second result is false for lockers no delivery references.
func (a *Analytics) LastDeliveryAt(lockerID string) (delivery.Delivery, bool) {
	d, ok := a.lastDelivery[lockerID]
	return d, ok
}

// IsActive reports whether at least one delivery references lockerID.
func (a *Analytics) IsActive(lockerID string) bool {
	_, ok := a.lastDelivery[lockerID]
	return ok
}
