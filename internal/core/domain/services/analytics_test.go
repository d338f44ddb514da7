package services_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/core/domain/model/user"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users      []user.User
	parcels    []parcel.Parcel
	lockers    []locker.Locker
	deliveries []delivery.Delivery
}

func (f fixture) analytics(logger *slog.Logger) *services.Analytics {
	return services.NewAnalytics(f.users, f.parcels, f.lockers, f.deliveries, logger)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func capture() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func mustUser(t *testing.T, email string, city kernel.City, lat, lon float64) user.User {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	u, err := user.NewUser(email, "Name", "Surname", city, loc)
	require.NoError(t, err)
	return u
}

func mustLocker(t *testing.T, id string, city kernel.City, lat, lon float64, s, m, l int) locker.Locker {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	compartments, err := kernel.NewSizeCounts(s, m, l)
	require.NoError(t, err)
	lk, err := locker.NewLocker(id, city, loc, compartments)
	require.NoError(t, err)
	return lk
}

func mustParcel(t *testing.T, id string, h, l, w int) parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(id, h, l, w)
	require.NoError(t, err)
	return p
}

func mustDelivery(t *testing.T, parcelID, lockerID, sender, receiver string, sent, expected time.Time) delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(parcelID, lockerID, sender, receiver, sent, expected)
	require.NoError(t, err)
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newFixture returns a small network:
//   - L001 in New York and L002 in Los Angeles are active
//   - L003 in Chicago has free compartments but no deliveries
//   - alice lives in Chicago, john in New York, jane in Los Angeles; bob is unknown
func newFixture(t *testing.T) fixture {
	return fixture{
		users: []user.User{
			mustUser(t, "john.doe@example.com", kernel.NewYork, 40.712776, -74.005974),
			mustUser(t, "jane.smith@example.com", kernel.LosAngeles, 34.052235, -118.243683),
			mustUser(t, "alice.smith@example.com", kernel.Chicago, 41.878113, -87.629799),
		},
		parcels: []parcel.Parcel{
			mustParcel(t, "P12345", 30, 50, 5),
			mustParcel(t, "P67890", 20, 40, 4),
			mustParcel(t, "P00001", 5, 5, 1),
		},
		lockers: []locker.Locker{
			mustLocker(t, "L002", kernel.LosAngeles, 34.052235, -118.243683, 25, 10, 8),
			mustLocker(t, "L001", kernel.NewYork, 40.730610, -73.935242, 20, 15, 5),
			mustLocker(t, "L003", kernel.Chicago, 41.878113, -87.629799, 1, 1, 1),
		},
		deliveries: []delivery.Delivery{
			mustDelivery(t, "P12345", "L001", "alice.smith@example.com", "john.doe@example.com",
				day(2023, 12, 1), day(2023, 12, 5)),
			mustDelivery(t, "P67890", "L002", "bob.jones@example.com", "jane.smith@example.com",
				day(2023, 12, 2), day(2023, 12, 12)),
		},
	}
}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		h, l int
		want kernel.Size
	}{
		{10, 20, kernel.Small},
		{20, 40, kernel.Medium},
		{31, 51, kernel.Large},
		{30, 50, kernel.Medium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.SizeOf(mustParcel(t, "P", tt.h, tt.l, 1)))
	}
}

func TestAnalytics_Snapshot(t *testing.T) {
	a := newFixture(t).analytics(discard())

	assert.Equal(t, []string{"L001", "L002", "L003"}, a.LockerIDs())
	assert.Len(t, a.Parcels(), 3)
	assert.Equal(t, "P12345", a.Parcels()[0].ID())
	assert.Equal(t, []string{"john.doe@example.com", "jane.smith@example.com", "alice.smith@example.com"}, a.UserEmails())
	assert.True(t, a.IsActive("L001"))
	assert.False(t, a.IsActive("L003"))

	d, ok := a.LastDeliveryAt("L002")
	require.True(t, ok)
	assert.Equal(t, "jane.smith@example.com", d.ReceiverEmail())

	_, ok = a.LastDeliveryAt("L003")
	assert.False(t, ok)
}

func TestAnalytics_Tally(t *testing.T) {
	a := newFixture(t).analytics(discard())

	t.Run("counts one replay per delivery", func(t *testing.T) {
		u := a.Tally()

		assert.Equal(t, 1, u.Of("L001", kernel.Medium))
		assert.Equal(t, 1, u.Of("L002", kernel.Medium))
		assert.Equal(t, 0, u.Of("L003", kernel.Medium))
		assert.Equal(t, 0, u.Of("L001", kernel.Small))
		assert.Equal(t, []string{"L001", "L002", "L003"}, u.Lockers())
	})

	t.Run("fresh counters are equal", func(t *testing.T) {
		assert.Equal(t, a.Tally(), a.Tally())
	})
}

func TestAnalytics_CheckCapacity(t *testing.T) {
	t.Run("matches a manual tally and doubles on a second pass", func(t *testing.T) {
		// Given
		a := newFixture(t).analytics(discard())
		u := services.NewUsage(a.LockerIDs()...)

		// When
		violations := a.CheckCapacity(u)

		// Then
		assert.Empty(t, violations)
		assert.Equal(t, a.Tally(), u)

		a.CheckCapacity(u)
		assert.Equal(t, 2, u.Of("L001", kernel.Medium))
		assert.Equal(t, 2, u.Of("L002", kernel.Medium))

		u.Reset()
		assert.Equal(t, 0, u.Total("L001"))
		assert.Equal(t, services.NewUsage(a.LockerIDs()...), u)
	})

	t.Run("reports and logs sizes over capacity", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.lockers = append(f.lockers, mustLocker(t, "L004", kernel.Chicago, 41.9, -87.6, 0, 1, 0))
		f.deliveries = append(f.deliveries,
			mustDelivery(t, "P12345", "L004", "john.doe@example.com", "jane.smith@example.com", day(2024, 1, 1), day(2024, 1, 2)),
			mustDelivery(t, "P67890", "L004", "jane.smith@example.com", "john.doe@example.com", day(2024, 1, 1), day(2024, 1, 3)),
			mustDelivery(t, "P00001", "L004", "jane.smith@example.com", "john.doe@example.com", day(2024, 1, 1), day(2024, 1, 3)),
		)
		logger, buf := capture()
		a := f.analytics(logger)

		// When
		violations := a.CheckCapacity(services.NewUsage(a.LockerIDs()...))

		// Then
		require.Len(t, violations, 2)
		assert.Equal(t, services.CapacityViolation{LockerID: "L004", Size: kernel.Small, Used: 1, Capacity: 0}, violations[0])
		assert.Equal(t, services.CapacityViolation{LockerID: "L004", Size: kernel.Medium, Used: 2, Capacity: 1}, violations[1])
		assert.Contains(t, buf.String(), "locker capacity exceeded")
		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("deliveries with unknown references are skipped", func(t *testing.T) {
		f := newFixture(t)
		f.deliveries = append(f.deliveries,
			mustDelivery(t, "P-missing", "L001", "a@x.com", "b@x.com", day(2024, 1, 1), day(2024, 1, 2)),
			mustDelivery(t, "P12345", "L-missing", "a@x.com", "b@x.com", day(2024, 1, 1), day(2024, 1, 2)),
		)
		logger, buf := capture()
		a := f.analytics(logger)

		u := a.Tally()

		assert.Equal(t, 1, u.Total("L001"))
		assert.Contains(t, buf.String(), "delivery references unknown parcel")
		assert.Contains(t, buf.String(), "delivery references unknown locker")
	})
}

func TestAnalytics_MostUsedSizes(t *testing.T) {
	t.Run("single winner and untouched lockers", func(t *testing.T) {
		a := newFixture(t).analytics(discard())

		got := a.MostUsedSizes(services.NewUsage(a.LockerIDs()...))

		assert.Equal(t, []kernel.Size{kernel.Medium}, got["L001"])
		assert.Equal(t, []kernel.Size{kernel.Medium}, got["L002"])
		assert.Equal(t, []kernel.Size{kernel.Small, kernel.Medium, kernel.Large}, got["L003"])
	})

	t.Run("ties are all returned in size order", func(t *testing.T) {
		f := newFixture(t)
		f.parcels = append(f.parcels, mustParcel(t, "P-large", 40, 60, 9))
		f.deliveries = append(f.deliveries,
			mustDelivery(t, "P-large", "L003", "a@x.com", "b@x.com", day(2024, 1, 1), day(2024, 1, 2)),
			mustDelivery(t, "P00001", "L003", "a@x.com", "b@x.com", day(2024, 1, 1), day(2024, 1, 2)),
		)
		a := f.analytics(discard())

		got := a.MostUsedSizes(a.Tally())

		// the counter already holds one replay, so counts are doubled but ties stay ties
		assert.Equal(t, []kernel.Size{kernel.Small, kernel.Large}, got["L003"])
	})

	t.Run("shares the counter with CheckCapacity", func(t *testing.T) {
		a := newFixture(t).analytics(discard())
		u := services.NewUsage(a.LockerIDs()...)

		a.CheckCapacity(u)
		a.MostUsedSizes(u)

		assert.Equal(t, 2, u.Of("L001", kernel.Medium))
	})
}

func TestAnalytics_TopParties(t *testing.T) {
	t.Run("top one breaks count ties by email", func(t *testing.T) {
		// Given
		a := newFixture(t).analytics(discard())

		// When
		got := a.TopParties(1)

		// Then
		require.Len(t, got.Senders, 1)
		assert.Equal(t, "alice.smith@example.com", got.Senders[0].Email)
		assert.Equal(t, 1, got.Senders[0].Deliveries)
		assert.Equal(t, "L002", got.Senders[0].FarthestLocker)
		assert.InDelta(t, 2800, got.Senders[0].MaxDistanceKm, 50)

		require.Len(t, got.Receivers, 1)
		assert.Equal(t, "jane.smith@example.com", got.Receivers[0].Email)
		assert.Equal(t, "L001", got.Receivers[0].FarthestLocker)
		assert.InDelta(t, 3940, got.Receivers[0].MaxDistanceKm, 30)
	})

	t.Run("most active party ranks first", func(t *testing.T) {
		f := newFixture(t)
		f.deliveries = append(f.deliveries,
			mustDelivery(t, "P00001", "L001", "john.doe@example.com", "jane.smith@example.com", day(2024, 1, 1), day(2024, 1, 2)),
			mustDelivery(t, "P00001", "L002", "john.doe@example.com", "alice.smith@example.com", day(2024, 1, 1), day(2024, 1, 2)),
		)
		a := f.analytics(discard())

		got := a.TopParties(2)

		require.Len(t, got.Senders, 2)
		assert.Equal(t, "john.doe@example.com", got.Senders[0].Email)
		assert.Equal(t, 2, got.Senders[0].Deliveries)
		assert.Equal(t, "alice.smith@example.com", got.Senders[1].Email)
		assert.Equal(t, "jane.smith@example.com", got.Receivers[0].Email)
		assert.Equal(t, 2, got.Receivers[0].Deliveries)
	})

	t.Run("unknown users are skipped with a warning", func(t *testing.T) {
		logger, buf := capture()
		a := newFixture(t).analytics(logger)

		got := a.TopParties(2)

		require.Len(t, got.Senders, 1)
		assert.Equal(t, "alice.smith@example.com", got.Senders[0].Email)
		assert.Contains(t, buf.String(), "no user found")
		assert.Contains(t, buf.String(), "bob.jones@example.com")
	})

	t.Run("no lockers leaves the farthest locker empty", func(t *testing.T) {
		f := newFixture(t)
		f.lockers = nil
		a := f.analytics(discard())

		got := a.TopParties(1)

		require.Len(t, got.Senders, 1)
		assert.Empty(t, got.Senders[0].FarthestLocker)
		assert.Zero(t, got.Senders[0].MaxDistanceKm)
	})

	t.Run("non-positive n selects nobody", func(t *testing.T) {
		got := newFixture(t).analytics(discard()).TopParties(0)

		assert.Empty(t, got.Senders)
		assert.Empty(t, got.Receivers)
	})
}

func TestAnalytics_LongestDelivery(t *testing.T) {
	t.Run("sender with the longest duration", func(t *testing.T) {
		a := newFixture(t).analytics(discard())

		got, ok := a.LongestDelivery()

		require.True(t, ok)
		assert.Equal(t, services.LongestDelivery{SenderEmail: "bob.jones@example.com", Days: 10}, got)
	})

	t.Run("ties go to the smallest email", func(t *testing.T) {
		f := newFixture(t)
		f.deliveries = append(f.deliveries,
			mustDelivery(t, "P00001", "L001", "aaron@example.com", "john.doe@example.com", day(2024, 1, 1), day(2024, 1, 11)),
		)
		a := f.analytics(discard())

		got, ok := a.LongestDelivery()

		require.True(t, ok)
		assert.Equal(t, "aaron@example.com", got.SenderEmail)
		assert.Equal(t, 10, got.Days)
	})

	t.Run("no deliveries", func(t *testing.T) {
		f := newFixture(t)
		f.deliveries = nil

		_, ok := f.analytics(discard()).LongestDelivery()

		assert.False(t, ok)
	})
}

func TestAnalytics_FindLocker(t *testing.T) {
	medium := func(t *testing.T) parcel.Parcel { return mustParcel(t, "P-new", 20, 40, 3) }

	t.Run("returns the closer active locker with its compartments", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.users = append(f.users, mustUser(t, "near@example.com", kernel.NewYork, 40.71, -74.00))
		a := f.analytics(discard())

		// When
		got, err := a.FindLocker("near@example.com", medium(t))

		// Then
		require.NoError(t, err)
		assert.Equal(t, "L001", got.LockerID)
		assert.Equal(t, 20, got.Compartments.Small())
		assert.Equal(t, 15, got.Compartments.Medium())
		assert.Equal(t, 5, got.Compartments.Large())
		assert.InDelta(t, 5.9, got.DistanceKm, 0.5)
	})

	t.Run("lockers without deliveries are not candidates", func(t *testing.T) {
		// alice stands next to L003, which nobody has used yet
		a := newFixture(t).analytics(discard())

		got, err := a.FindLocker("alice.smith@example.com", medium(t))

		require.NoError(t, err)
		assert.Equal(t, "L001", got.LockerID)
	})

	t.Run("no active locker with a free compartment of that size", func(t *testing.T) {
		// Given
		f := newFixture(t)
		f.lockers = []locker.Locker{
			mustLocker(t, "L001", kernel.NewYork, 40.730610, -73.935242, 20, 0, 5),
			mustLocker(t, "L002", kernel.LosAngeles, 34.052235, -118.243683, 25, 0, 8),
			mustLocker(t, "L003", kernel.Chicago, 41.878113, -87.629799, 1, 1, 1),
		}
		logger, buf := capture()
		a := f.analytics(logger)

		// When
		got, err := a.FindLocker("john.doe@example.com", medium(t))

		// Then
		require.ErrorIs(t, err, services.ErrLockerNotFound)
		assert.Equal(t, services.LockerMatch{}, got)
		assert.Contains(t, buf.String(), "no locker found")
	})

	t.Run("unknown user", func(t *testing.T) {
		a := newFixture(t).analytics(discard())

		got, err := a.FindLocker("nobody@example.com", medium(t))

		require.ErrorIs(t, err, services.ErrLockerNotFound)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, services.LockerMatch{}, got)
	})

	t.Run("equal distances go to the smallest locker id", func(t *testing.T) {
		f := newFixture(t)
		f.lockers = append(f.lockers, mustLocker(t, "L000", kernel.NewYork, 40.730610, -73.935242, 1, 1, 1))
		f.deliveries = append(f.deliveries,
			mustDelivery(t, "P00001", "L000", "alice.smith@example.com", "jane.smith@example.com", day(2024, 1, 1), day(2024, 1, 2)),
		)
		a := f.analytics(discard())

		got, err := a.FindLocker("john.doe@example.com", medium(t))

		require.NoError(t, err)
		assert.Equal(t, "L000", got.LockerID)
	})
}
