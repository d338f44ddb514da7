// Package summary joins the four entity kinds into a per-user view of the
// deliveries each user has sent.
package summary

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/domain/model/user"
	"parcellocker/internal/core/ports"
)

// Summary maps each sender to the multiset of their resolvable deliveries.
type Summary struct {
	byUser map[user.User]map[delivery.Delivery]int
}

// Len returns the number of senders.
func (s *Summary) Len() int {
	return len(s.byUser)
}

// IsEmpty reports whether no delivery could be resolved.
func (s *Summary) IsEmpty() bool {
	return len(s.byUser) == 0
}

// Users returns the senders ordered by email.
func (s *Summary) Users() []user.User {
	users := slices.Collect(maps.Keys(s.byUser))
	slices.SortFunc(users, func(a, b user.User) int {
		return cmp.Compare(a.Email(), b.Email())
	})
	return users
}

// Deliveries returns a copy of the delivery counts of u.
func (s *Summary) Deliveries(u user.User) map[delivery.Delivery]int {
	return maps.Clone(s.byUser[u])
}

// Count returns how many times d was recorded for u.
func (s *Summary) Count(u user.User, d delivery.Delivery) int {
	return s.byUser[u][d]
}

// Repository builds and memoizes the purchase summary. It is safe for
// concurrent use.
//
// The memoized summary is never invalidated by changes in the underlying
// source. Callers that know the source changed pass forceRefresh.
type Repository struct {
	source ports.SnapshotSource

	mu     sync.Mutex
	cached *Summary
	logger *slog.Logger
}

// NewRepository creates a summary repository. Every build joins the four
// entity kinds of a single snapshot taken from source.
func NewRepository(source ports.SnapshotSource, logger *slog.Logger) *Repository {
	return &Repository{
		source: source,
		logger: logger.With("component", "purchase_summary"),
	}
}

// Summary returns the memoized summary, building it first when forceRefresh
// is set or the memoized summary is missing or empty. The returned summary
// is never modified afterwards.
func (r *Repository) Summary(forceRefresh bool) *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	if forceRefresh || r.cached == nil || r.cached.IsEmpty() {
		r.logger.Info("building purchase summary", "force_refresh", forceRefresh)
		r.cached = r.build()
	}
	return r.cached
}

func (r *Repository) build() *Summary {
	snapshot := r.source.Snapshot()

	users := make(map[string]user.User)
	for _, u := range snapshot.Users {
		users[u.Email()] = u
	}
	lockers := make(map[string]struct{})
	for _, l := range snapshot.Lockers {
		lockers[l.ID()] = struct{}{}
	}
	parcels := make(map[string]struct{})
	for _, p := range snapshot.Parcels {
		parcels[p.ID()] = struct{}{}
	}

	s := &Summary{byUser: make(map[user.User]map[delivery.Delivery]int)}
	for _, d := range snapshot.Deliveries {
		sender, userOK := users[d.SenderEmail()]
		_, lockerOK := lockers[d.LockerID()]
		_, parcelOK := parcels[d.ParcelID()]

		if !userOK || !lockerOK || !parcelOK {
			r.logger.Warn("delivery has invalid user or locker or parcel reference",
				"sender_email", d.SenderEmail(), "locker_id", d.LockerID(), "parcel_id", d.ParcelID(),
				"user_found", userOK, "locker_found", lockerOK, "parcel_found", parcelOK)
			continue
		}

		if s.byUser[sender] == nil {
			s.byUser[sender] = make(map[delivery.Delivery]int)
		}
		s.byUser[sender][d]++
	}
	return s
}
