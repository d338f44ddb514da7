package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"parcellocker/cmd"
	"parcellocker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usersJSON = `[
  {"email": "john.doe@gmail.com", "name": "John", "surname": "Doe", "city": "New York", "latitude": 40.712776, "longitude": -74.005974},
  {"email": "jane.roe@gmail.com", "name": "Jane", "surname": "Roe", "city": "Los Angeles", "latitude": 34.052235, "longitude": -118.243683}
]`
	parcelsJSON = `[{"parcel_id": "P001", "height": 5, "length": 10, "weight": 1}]`
	lockersJSON = `[
  {"locker_id": "L001", "city": "New York", "latitude": 40.730610, "longitude": -73.935242,
   "compartments": {"small": 20, "medium": 15, "large": 5}}
]`
	deliveriesJSON = `[
  {"parcel_id": "P001", "locker_id": "L001", "sender_email": "john.doe@gmail.com",
   "receiver_email": "jane.roe@gmail.com", "sent_date": "2023-12-01", "expected_delivery_date": "2023-12-08"}
]`
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDatasets(t *testing.T) cmd.Config {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"users.json": usersJSON, "parcels.json": parcelsJSON,
		"lockers.json": lockersJSON, "deliveries.json": deliveriesJSON,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return cmd.Config{
		UsersFile:      filepath.Join(dir, "users.json"),
		ParcelsFile:    filepath.Join(dir, "parcels.json"),
		LockersFile:    filepath.Join(dir, "lockers.json"),
		DeliveriesFile: filepath.Join(dir, "deliveries.json"),
		ReportPath:     filepath.Join(dir, "out", "report.txt"),
	}.WithDefaults()
}

func TestCompositionRoot_JSONSource(t *testing.T) {
	// Given
	configs := writeDatasets(t)
	app, err := cmd.NewCompositionRoot(t.Context(), configs, discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	// When
	require.NoError(t, app.CreateRefreshJob().RunOnce(t.Context()))

	// Then
	query, err := queries.NewLocateParcelQuery("p001")
	require.NoError(t, err)
	located, err := app.CreateLocateParcelQueryHandler().Handle(t.Context(), query)
	require.NoError(t, err)
	assert.True(t, located.Found)
	assert.Equal(t, "L001", located.LockerID)

	report, err := app.CreateGetReportQueryHandler().Handle(t.Context(), queries.NewGetReportQuery())
	require.NoError(t, err)
	assert.Contains(t, report, "Parcel ID: P001, Size: small")

	summary, err := app.CreateGetPurchaseSummaryQueryHandler().Handle(t.Context(), queries.NewGetPurchaseSummaryQuery())
	require.NoError(t, err)
	require.Len(t, summary.Senders, 1)
	assert.Equal(t, "john.doe@gmail.com", summary.Senders[0].Email)
}

func TestCompositionRoot_SeedSQLite(t *testing.T) {
	// Given
	configs := writeDatasets(t)
	configs.DataSource = cmd.DataSourceSQLite
	configs.SQLitePath = ":memory:"
	configs.SeedFromJSON = true
	require.NoError(t, configs.Validate())

	app, err := cmd.NewCompositionRoot(t.Context(), configs, discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	// When
	require.NoError(t, app.Seed(t.Context()))
	require.NoError(t, app.CreateRefreshJob().RunOnce(t.Context()))

	// Then
	query, err := queries.NewGetStatisticsQuery(3)
	require.NoError(t, err)
	stats, err := app.CreateGetStatisticsQueryHandler().Handle(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, stats.ParcelSizes, 1)
	assert.Equal(t, "P001", stats.ParcelSizes[0].ParcelID)
	require.NotNil(t, stats.LongestDelivery)
	assert.Equal(t, 7, stats.LongestDelivery.Days)
}

func TestCompositionRoot_SeedNeedsDatabase(t *testing.T) {
	app, err := cmd.NewCompositionRoot(t.Context(), writeDatasets(t), discard())
	require.NoError(t, err)

	require.Error(t, app.Seed(t.Context()))
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	configs := writeDatasets(t)
	configs.ReportSchedule = "0 0 8 * * *"
	app, err := cmd.NewCompositionRoot(t.Context(), configs, discard())
	require.NoError(t, err)

	manager, err := app.CreateJobManager(app.CreateRefreshJob())
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
