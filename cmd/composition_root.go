package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	httpin "parcellocker/internal/adapters/in/http"
	"parcellocker/internal/adapters/out/gormsource"
	"parcellocker/internal/adapters/out/jsonfile"
	"parcellocker/internal/adapters/out/report"
	"parcellocker/internal/adapters/out/smtp"
	"parcellocker/internal/core/application/ingest"
	"parcellocker/internal/core/application/summary"
	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	gormDB    *gorm.DB
	store     ports.RecordStore
	catalog   *ingest.Catalog
	summaries *summary.Repository
	notifier  ports.Notifier
	renderer  ports.ReportRenderer
}

// NewCompositionRoot opens the configured record store and builds the
// catalog over it. Nothing is read until the first refresh.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs:  configs,
		logger:   logger,
		renderer: report.NewTextRenderer(),
	}

	if err := c.openStore(ctx); err != nil {
		return nil, err
	}

	catalog, err := c.newCatalog(c.store)
	if err != nil {
		return nil, err
	}
	c.catalog = catalog
	c.summaries = summary.NewRepository(catalog, logger)

	if smtpConfig := configs.SMTP(); smtpConfig.Configured() {
		notifier, err := smtp.NewNotifier(smtpConfig, logger)
		if err != nil {
			return nil, err
		}
		c.notifier = notifier
	} else {
		c.notifier = smtp.NewNoop(logger)
	}

	return c, nil
}

func (c *CompositionRoot) openStore(ctx context.Context) error {
	var err error
	switch c.configs.DataSource {
	case DataSourcePostgres:
		dsn := gormsource.PostgresDSN(c.configs.DBHost, c.configs.DBPort, c.configs.DBUser,
			c.configs.DBPassword, c.configs.DBName, c.configs.DBSslMode)
		c.gormDB, err = gormsource.OpenPostgres(dsn)
	case DataSourceSQLite:
		c.gormDB, err = gormsource.OpenSQLite(c.configs.SQLitePath)
	default:
		c.store = jsonfile.NewStore(c.logger)
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s database: %w", c.configs.DataSource, err)
	}

	store := gormsource.NewStore(c.gormDB, c.logger)
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate %s database: %w", c.configs.DataSource, err)
	}
	c.store = store
	return nil
}

func (c *CompositionRoot) newCatalog(source ports.RecordSource) (*ingest.Catalog, error) {
	var resolver ingest.MXResolver
	if c.configs.CheckEmailDeliverability {
		resolver = net.DefaultResolver
	}

	users, err := ingest.NewDataRepository(source, ingest.UserSchema(resolver), c.configs.UsersFile, c.logger)
	if err != nil {
		return nil, err
	}
	parcels, err := ingest.NewDataRepository(source, ingest.ParcelSchema(), c.configs.ParcelsFile, c.logger)
	if err != nil {
		return nil, err
	}
	lockers, err := ingest.NewDataRepository(source, ingest.LockerSchema(), c.configs.LockersFile, c.logger)
	if err != nil {
		return nil, err
	}
	deliveries, err := ingest.NewDataRepository(source, ingest.DeliverySchema(), c.configs.DeliveriesFile, c.logger)
	if err != nil {
		return nil, err
	}

	return ingest.NewCatalog(users, parcels, lockers, deliveries), nil
}

// Seed loads the JSON datasets and writes them into the configured store
// under the same dataset names.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if c.gormDB == nil {
		return errors.New("seeding needs a database data source")
	}

	source, err := c.newCatalog(jsonfile.NewStore(c.logger))
	if err != nil {
		return err
	}
	if err := source.RefreshAll(ctx); err != nil {
		return fmt.Errorf("load seed datasets: %w", err)
	}

	handler := commands.NewExportDataCommandHandler(source, c.store, c.logger)
	return handler.Handle(ctx, commands.NewExportDataCommand())
}

// Close releases the database connection pool, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) CreateRefreshDataCommandHandler() commands.RefreshDataCommandHandler {
	return commands.NewRefreshDataCommandHandler(c.catalog, c.summaries, c.logger)
}

func (c *CompositionRoot) CreateExportDataCommandHandler(sink ports.RecordSink) commands.ExportDataCommandHandler {
	return commands.NewExportDataCommandHandler(c.catalog, sink, c.logger)
}

func (c *CompositionRoot) CreateNotifyFreeLockerCommandHandler() commands.NotifyFreeLockerCommandHandler {
	return commands.NewNotifyFreeLockerCommandHandler(c.catalog, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateSendReportCommandHandler() (commands.SendReportCommandHandler, error) {
	return commands.NewSendReportCommandHandler(c.catalog, c.renderer, c.notifier, c.configs.ReportPath, c.logger)
}

func (c *CompositionRoot) CreateFindLockerQueryHandler() queries.FindLockerQueryHandler {
	return queries.NewFindLockerQueryHandler(c.catalog, c.logger)
}

func (c *CompositionRoot) CreateLocateParcelQueryHandler() queries.LocateParcelQueryHandler {
	return queries.NewLocateParcelQueryHandler(c.catalog.DeliverySource())
}

func (c *CompositionRoot) CreateGetReportQueryHandler() queries.GetReportQueryHandler {
	return queries.NewGetReportQueryHandler(c.catalog, c.renderer, c.logger)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.catalog, c.logger)
}

func (c *CompositionRoot) CreateGetPurchaseSummaryQueryHandler() queries.GetPurchaseSummaryQueryHandler {
	return queries.NewGetPurchaseSummaryQueryHandler(c.summaries)
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	sendReport, err := c.CreateSendReportCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateNotifyFreeLockerCommandHandler(),
		sendReport,
		c.CreateFindLockerQueryHandler(),
		c.CreateLocateParcelQueryHandler(),
		c.CreateGetReportQueryHandler(),
		c.CreateGetStatisticsQueryHandler(),
		c.CreateGetPurchaseSummaryQueryHandler(),
	), nil
}

func (c *CompositionRoot) CreateRefreshJob() *jobs.RefreshJob {
	return jobs.NewRefreshJob(c.CreateRefreshDataCommandHandler(), c.configs.RefreshSchedule, c.logger)
}

// CreateJobManager returns the manager of every scheduled job. The report
// job is only added when a report schedule is configured.
func (c *CompositionRoot) CreateJobManager(refresh *jobs.RefreshJob) (*jobs.JobManager, error) {
	scheduled := []jobs.Job{refresh}

	if c.configs.ReportSchedule != "" {
		handler, err := c.CreateSendReportCommandHandler()
		if err != nil {
			return nil, err
		}
		cmd, err := commands.NewSendReportCommand(c.configs.ReportSubject, "")
		if err != nil {
			return nil, err
		}
		scheduled = append(scheduled, jobs.NewReportJob(handler, cmd, c.configs.ReportSchedule, c.logger))
	}

	return jobs.NewJobManager(scheduled...), nil
}
