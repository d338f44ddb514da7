package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"parcellocker/internal/adapters/out/smtp"
	"parcellocker/internal/pkg/errs"
)

// Data sources.
const (
	DataSourceJSON     = "json"
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
)

type Config struct {
	HTTPPort   string
	DataSource string

	UsersFile      string
	ParcelsFile    string
	LockersFile    string
	DeliveriesFile string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	// SeedFromJSON copies the JSON datasets into the database on startup.
	SeedFromJSON bool

	RefreshSchedule string
	ReportSchedule  string
	ReportPath      string
	ReportSubject   string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPSender   string

	CheckEmailDeliverability bool

	LogLevel  string
	LogFormat string
}

// WithDefaults fills every empty optional setting.
func (c Config) WithDefaults() Config {
	def := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	def(&c.HTTPPort, "8080")
	def(&c.DataSource, DataSourceJSON)
	def(&c.UsersFile, "data/users.json")
	def(&c.ParcelsFile, "data/parcels.json")
	def(&c.LockersFile, "data/lockers.json")
	def(&c.DeliveriesFile, "data/deliveries.json")
	def(&c.DBSslMode, "disable")
	def(&c.SQLitePath, "data/parcellocker.db")
	def(&c.RefreshSchedule, "0 */5 * * * *")
	def(&c.ReportPath, "data/report.txt")
	def(&c.ReportSubject, "Parcel locker report")
	def(&c.LogLevel, "info")
	def(&c.LogFormat, "text")
	return c
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	switch c.DataSource {
	case DataSourceJSON, DataSourceSQLite:
	case DataSourcePostgres:
		for name, v := range map[string]string{
			"DB_HOST": c.DBHost, "DB_PORT": c.DBPort, "DB_USER": c.DBUser, "DB_NAME": c.DBName,
		} {
			if v == "" {
				problems = append(problems, errs.NewValueIsRequiredError(name))
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("DATA_SOURCE",
			fmt.Errorf("%q is not one of json, postgres, sqlite", c.DataSource)))
	}

	if c.SeedFromJSON && c.DataSource == DataSourceJSON {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("SEED_FROM_JSON",
			errors.New("seeding needs a database data source")))
	}

	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_FORMAT",
			fmt.Errorf("%q is not one of text, json", c.LogFormat)))
	}

	return errors.Join(problems...)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

// NewLogger builds the application logger writing to w in LogFormat at
// LogLevel. The process-wide default logger is left alone.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SMTP returns the notifier settings. An unset or malformed port yields 0,
// which leaves the notifier unconfigured.
func (c Config) SMTP() smtp.Config {
	port, _ := strconv.Atoi(c.SMTPPort)
	return smtp.Config{
		Host:     c.SMTPHost,
		Port:     port,
		Username: c.SMTPUsername,
		Password: c.SMTPPassword,
		Sender:   c.SMTPSender,
	}
}
