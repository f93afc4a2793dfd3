package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agencydash/analytics-dashboard-api/internal/api/handler"
	"github.com/agencydash/analytics-dashboard-api/internal/api/handler/router"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/scheduler"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/authenticating"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/targeting"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/agencydash/analytics-dashboard-api/pkg/middleware"
	"github.com/justinas/alice"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.Reporter,
	targetService targeting.TargetService,
	authenticator authenticating.Authenticator,
	datasetLoader acquiring.Loader,
	refreshService *scheduler.DatasetRefreshService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Dashboard(reportingService)...),
		router.WithRoutes(handler.Targets(targetService)...),
		router.WithRoutes(handler.Datasets(datasetLoader, refreshService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithField("timeout", "15s").Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("error during server shutdown")
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
