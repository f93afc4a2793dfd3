package main

import (
	"context"
	"time"

	"github.com/agencydash/analytics-dashboard-api/infrastructure/database/postgres"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest/harvestclient"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/mondayclient"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/xeroclient"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/repository"
	"github.com/agencydash/analytics-dashboard-api/internal/api"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/scheduler"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/authenticating"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/targeting"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	targetsRepo := repository.NewTeamTargetsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	mondayClient := mondayclient.NewClient(cfg)
	mondayIntegrator := monday.New(cfg, mondayClient)

	harvestClient := harvestclient.NewClient(cfg)
	harvestIntegrator := harvest.New(cfg, harvestClient)

	xeroClient := xeroclient.NewClient(cfg)
	xeroIntegrator := xero.New(cfg, xeroClient)

	datasetLoader := acquiring.NewService(cfg, mondayIntegrator, harvestIntegrator, xeroIntegrator)

	// Warm the first snapshot in the background so startup never blocks on
	// the external APIs.
	go func() {
		if _, err := datasetLoader.Refresh(); err != nil {
			log.L.WithError(err).Error("initial dataset load failed")
		}
	}()

	refreshService := scheduler.NewDatasetRefreshService(datasetLoader, cfg)
	if err := refreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("failed to start dataset refresh scheduler")
	}

	reportingService := reporting.NewService(datasetLoader, targetsRepo)
	targetService := targeting.NewService(targetsRepo)

	server, err := api.New(
		cfg,
		reportingService,
		targetService,
		authenticator,
		datasetLoader,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
