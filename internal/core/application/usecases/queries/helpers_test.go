package queries_test

import (
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
	"parcellocker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(w io.Writer, analytics *services.Analytics) error {
	args := m.Called(w, analytics)
	if text := args.String(0); text != "" {
		_, _ = io.WriteString(w, text)
	}
	return args.Error(1)
}

func (m *MockRenderer) RenderFile(path string, analytics *services.Analytics) error {
	args := m.Called(path, analytics)
	return args.Error(0)
}

type stubCatalog struct {
	users      []user.User
	parcels    []parcel.Parcel
	lockers    []locker.Locker
	deliveries []delivery.Delivery
}

func (c stubCatalog) Users() []user.User              { return c.users }
func (c stubCatalog) Parcels() []parcel.Parcel        { return c.parcels }
func (c stubCatalog) Lockers() []locker.Locker        { return c.lockers }
func (c stubCatalog) Deliveries() []delivery.Delivery { return c.deliveries }

func (c stubCatalog) Snapshot() ports.Snapshot {
	return ports.Snapshot{Users: c.users, Parcels: c.parcels, Lockers: c.lockers, Deliveries: c.deliveries}
}

type stubDeliveries []delivery.Delivery

func (s stubDeliveries) Get() []delivery.Delivery { return s }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(d int) time.Time {
	return time.Date(2023, time.December, d, 0, 0, 0, 0, time.UTC)
}

// newCatalog returns a network of two users and two lockers:
//
//	P001 small  L001  john -> jane  1..8 Dec
//	P002 large  L001  jane -> john  3..5 Dec
//	P003 small  L002  john -> jane  2..4 Dec
//
// L001 has a single large compartment, so its two-compartment replay never
// overflows but L002 (no small compartments) does.
func newCatalog(t *testing.T) stubCatalog {
	t.Helper()

	newUser := func(email string, city kernel.City, lat, lon float64) user.User {
		loc, err := kernel.NewLocation(lat, lon)
		require.NoError(t, err)
		u, err := user.NewUser(email, "Name", "Surname", city, loc)
		require.NoError(t, err)
		return u
	}
	newLocker := func(id string, city kernel.City, lat, lon float64, s, m, l int) locker.Locker {
		loc, err := kernel.NewLocation(lat, lon)
		require.NoError(t, err)
		c, err := kernel.NewSizeCounts(s, m, l)
		require.NoError(t, err)
		lk, err := locker.NewLocker(id, city, loc, c)
		require.NoError(t, err)
		return lk
	}
	newParcel := func(id string, h, l int) parcel.Parcel {
		p, err := parcel.NewParcel(id, h, l, 1)
		require.NoError(t, err)
		return p
	}
	newDelivery := func(parcelID, lockerID, sender, receiver string, sent, expected int) delivery.Delivery {
		d, err := delivery.NewDelivery(parcelID, lockerID, sender, receiver, day(sent), day(expected))
		require.NoError(t, err)
		return d
	}

	return stubCatalog{
		users: []user.User{
			newUser("john.doe@gmail.com", kernel.NewYork, 40.712776, -74.005974),
			newUser("jane.smith@gmail.com", kernel.LosAngeles, 34.052235, -118.243683),
		},
		parcels: []parcel.Parcel{
			newParcel("P001", 5, 10),
			newParcel("P002", 40, 60),
			newParcel("P003", 8, 15),
		},
		lockers: []locker.Locker{
			newLocker("L001", kernel.NewYork, 40.730610, -73.935242, 5, 5, 1),
			newLocker("L002", kernel.LosAngeles, 34.052235, -118.243683, 0, 2, 2),
		},
		deliveries: []delivery.Delivery{
			newDelivery("P001", "L001", "john.doe@gmail.com", "jane.smith@gmail.com", 1, 8),
			newDelivery("P002", "L001", "jane.smith@gmail.com", "john.doe@gmail.com", 3, 5),
			newDelivery("P003", "L002", "john.doe@gmail.com", "jane.smith@gmail.com", 2, 4),
		},
	}
}
