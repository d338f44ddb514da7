package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"parcellocker/cmd"
	httpin "parcellocker/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := configs.NewLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if configs.SeedFromJSON {
		if err := app.Seed(ctx); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	refresh := app.CreateRefreshJob()
	if err := refresh.RunOnce(ctx); err != nil {
		logger.Error("initial load failed, serving previous data", "error", err)
	}

	jobManager, err := app.CreateJobManager(refresh)
	if err != nil {
		log.Fatalf("failed to create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DataSource: os.Getenv("DATA_SOURCE"),

		UsersFile:      os.Getenv("USERS_FILE"),
		ParcelsFile:    os.Getenv("PARCELS_FILE"),
		LockersFile:    os.Getenv("LOCKERS_FILE"),
		DeliveriesFile: os.Getenv("DELIVERIES_FILE"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		SQLitePath: os.Getenv("SQLITE_PATH"),

		SeedFromJSON: boolVariable("SEED_FROM_JSON"),

		RefreshSchedule: os.Getenv("REFRESH_SCHEDULE"),
		ReportSchedule:  os.Getenv("REPORT_SCHEDULE"),
		ReportPath:      os.Getenv("REPORT_PATH"),
		ReportSubject:   os.Getenv("REPORT_SUBJECT"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPSender:   os.Getenv("SMTP_SENDER"),

		CheckEmailDeliverability: boolVariable("CHECK_EMAIL_DELIVERABILITY"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}
	return config.WithDefaults()
}

// loadDotEnv reads .env into the environment. A missing file is fine;
// variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func boolVariable(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server, err := app.CreateServer()
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	e := httpin.NewEcho(server, logger)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", "error", err)
	}
}
