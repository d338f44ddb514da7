package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/domain/model/user"
)

// EntitySource exposes the cached entities of one kind in source order.
// Get never triggers a reload.
type EntitySource[T any] interface {
	Get() []T
}

// Snapshot holds all four entity kinds as read in one refresh cycle.
type Snapshot struct {
	Users      []user.User
	Parcels    []parcel.Parcel
	Lockers    []locker.Locker
	Deliveries []delivery.Delivery
}

// SnapshotSource hands out consistent snapshots of the entity caches.
type SnapshotSource interface {
	Snapshot() Snapshot
}

// Catalog is the current view of all four entity kinds.
//
// Each accessor reads one kind on its own. Combining the results of several
// accessors may mix refresh cycles; use Snapshot when kinds are joined.
type Catalog interface {
	Users() []user.User
	Parcels() []parcel.Parcel
	Lockers() []locker.Locker
	Deliveries() []delivery.Delivery

	// Snapshot returns every kind from the same refresh cycle.
	Snapshot() Snapshot
}

// Refresher reloads every dataset from its stored source location.
// A conversion failure in any dataset is returned and leaves that
// dataset's previous contents in place.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}
