package ingest

import (
	"context"
	"errors"
	"sync"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/domain/model/user"
	"parcellocker/internal/core/ports"
)

// Catalog groups the four data repositories. It implements ports.Catalog
// and ports.Refresher.
//
// Unlike a bare DataRepository, a Catalog is safe for concurrent use:
// reads share a lock that RefreshAll takes exclusively.
type Catalog struct {
	mu sync.RWMutex

	users      *DataRepository[user.User]
	parcels    *DataRepository[parcel.Parcel]
	lockers    *DataRepository[locker.Locker]
	deliveries *DataRepository[delivery.Delivery]
}

var (
	_ ports.Catalog   = (*Catalog)(nil)
	_ ports.Refresher = (*Catalog)(nil)
)

// NewCatalog creates a Catalog over the given repositories.
func NewCatalog(
	users *DataRepository[user.User],
	parcels *DataRepository[parcel.Parcel],
	lockers *DataRepository[locker.Locker],
	deliveries *DataRepository[delivery.Delivery],
) *Catalog {
	return &Catalog{users: users, parcels: parcels, lockers: lockers, deliveries: deliveries}
}

// Users returns the cached users.
func (c *Catalog) Users() []user.User { return c.UserSource().Get() }

// Parcels returns the cached parcels.
func (c *Catalog) Parcels() []parcel.Parcel { return c.ParcelSource().Get() }

// Lockers returns the cached lockers.
func (c *Catalog) Lockers() []locker.Locker { return c.LockerSource().Get() }

// Deliveries returns the cached deliveries.
func (c *Catalog) Deliveries() []delivery.Delivery { return c.DeliverySource().Get() }

// Snapshot reads all four caches under one read lock, so a concurrent
// RefreshAll is seen either completely or not at all.
func (c *Catalog) Snapshot() ports.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ports.Snapshot{
		Users:      c.users.Get(),
		Parcels:    c.parcels.Get(),
		Lockers:    c.lockers.Get(),
		Deliveries: c.deliveries.Get(),
	}
}

// UserSource, ParcelSource, LockerSource and DeliverySource expose the
// individual repositories to consumers that join them.
func (c *Catalog) UserSource() ports.EntitySource[user.User] {
	return lockedSource[user.User]{mu: &c.mu, repo: c.users}
}

func (c *Catalog) ParcelSource() ports.EntitySource[parcel.Parcel] {
	return lockedSource[parcel.Parcel]{mu: &c.mu, repo: c.parcels}
}

func (c *Catalog) LockerSource() ports.EntitySource[locker.Locker] {
	return lockedSource[locker.Locker]{mu: &c.mu, repo: c.lockers}
}

func (c *Catalog) DeliverySource() ports.EntitySource[delivery.Delivery] {
	return lockedSource[delivery.Delivery]{mu: &c.mu, repo: c.deliveries}
}

// RefreshAll refreshes every repository from its stored filename. A failing
// repository does not stop the others; all failures are returned joined.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, uErr := c.users.Refresh(ctx, c.users.Filename())
	_, pErr := c.parcels.Refresh(ctx, c.parcels.Filename())
	_, lErr := c.lockers.Refresh(ctx, c.lockers.Filename())
	_, dErr := c.deliveries.Refresh(ctx, c.deliveries.Filename())
	return errors.Join(uErr, pErr, lErr, dErr)
}

// ExportAll writes every repository's cache to sink under its stored filename.
func (c *Catalog) ExportAll(ctx context.Context, sink ports.RecordSink) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return errors.Join(
		c.users.Export(ctx, sink, ""),
		c.parcels.Export(ctx, sink, ""),
		c.lockers.Export(ctx, sink, ""),
		c.deliveries.Export(ctx, sink, ""),
	)
}

type lockedSource[T any] struct {
	mu   *sync.RWMutex
	repo *DataRepository[T]
}

func (s lockedSource[T]) Get() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.Get()
}
