package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parcellocker/internal/core/application/summary"
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

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) RefreshAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSummaryRepository struct{ mock.Mock }

func (m *MockSummaryRepository) Summary(forceRefresh bool) *summary.Summary {
	args := m.Called(forceRefresh)
	return args.Get(0).(*summary.Summary)
}

type MockExporter struct{ mock.Mock }

func (m *MockExporter) ExportAll(ctx context.Context, sink ports.RecordSink) error {
	args := m.Called(ctx, sink)
	return args.Error(0)
}

type MockRecordSink struct{ mock.Mock }

func (m *MockRecordSink) Write(ctx context.Context, filename string, records []ports.Record) error {
	args := m.Called(ctx, filename, records)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, msg ports.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(w io.Writer, analytics *services.Analytics) error {
	args := m.Called(w, analytics)
	return args.Error(0)
}

func (m *MockRenderer) RenderFile(path string, analytics *services.Analytics) error {
	args := m.Called(path, analytics)
	return args.Error(0)
}

// stubCatalog is a fixed in-memory ports.Catalog.
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

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCatalog returns john in New York sending one small parcel through
// L001 (New York) to jane in Los Angeles. L002 is never used.
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

	p, err := parcel.NewParcel("P001", 5, 10, 1)
	require.NoError(t, err)

	d, err := delivery.NewDelivery("P001", "L001", "john.doe@gmail.com", "jane.smith@gmail.com",
		time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return stubCatalog{
		users: []user.User{
			newUser("john.doe@gmail.com", kernel.NewYork, 40.712776, -74.005974),
			newUser("jane.smith@gmail.com", kernel.LosAngeles, 34.052235, -118.243683),
		},
		parcels: []parcel.Parcel{p},
		lockers: []locker.Locker{
			newLocker("L001", kernel.NewYork, 40.730610, -73.935242, 20, 15, 5),
			newLocker("L002", kernel.LosAngeles, 34.052235, -118.243683, 10, 10, 10),
		},
		deliveries: []delivery.Delivery{d},
	}
}
