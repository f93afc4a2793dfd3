// Package scheduler contains the cron jobs that keep acquired data fresh.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/go-co-op/gocron"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService periodically re-fetches the source dataset so
// dashboard requests read from a recent snapshot.
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	loader              acquiring.Loader
	config              DatasetRefreshConfig
	refreshRunning      bool
	refreshMutex        sync.Mutex
	lastRefreshStartAt  time.Time
	lastRefreshDoneAt   time.Time
	lastRefreshSnapshot string
}

func NewDatasetRefreshService(loader acquiring.Loader, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	log.L.WithFields(log.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("dataset refresh scheduler configured")

	return &DatasetRefreshService{
		scheduler: scheduler,
		loader:    loader,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("dataset refresh cron disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("starting dataset refresh cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRefresh(); err != nil {
			log.L.WithError(err).Error("scheduled dataset refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dataset refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping dataset refresh cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRefresh executes one refresh cycle. Only one cycle runs at a time;
// overlapping triggers are dropped.
func (s *DatasetRefreshService) RunRefresh() error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		log.L.Warn("dataset refresh already running, skipping")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRefreshDoneAt = time.Now()
	}()

	log.L.Info("starting dataset refresh")

	dataset, err := s.loader.Refresh()
	if err != nil {
		log.L.WithError(err).Error("dataset refresh failed")
		return err
	}

	s.lastRefreshSnapshot = dataset.SnapshotID

	log.L.WithFields(log.Fields{
		"snapshot_id": dataset.SnapshotID,
		"origin":      dataset.Origin,
	}).Info("dataset refresh completed")

	return nil
}

// TriggerManualRefresh starts a refresh in the background, unless one is
// already in flight.
func (s *DatasetRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		log.L.Info("dataset refresh already in progress, ignoring manual trigger")
		return
	}
	s.refreshMutex.Unlock()

	log.L.Info("starting manual dataset refresh")
	go func() {
		if err := s.RunRefresh(); err != nil {
			log.L.WithError(err).Error("manual dataset refresh failed")
		}
	}()
}

// GetStatus reports the scheduler state for the datasets status endpoint.
// The timestamps are written by RunRefresh under the same mutex.
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"last_refresh_started_at":   s.lastRefreshStartAt,
		"last_refresh_completed_at": s.lastRefreshDoneAt,
		"last_refresh_snapshot_id":  s.lastRefreshSnapshot,
	}
}
