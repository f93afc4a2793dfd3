package acquiring

import (
	"fmt"
	"sync"
	"time"

	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

// Loader acquires and holds the current dataset snapshot. A fetch never
// errors the dashboard out: when credentials are missing or any source
// fails, the snapshot falls back to demo data and says so through Origin
// and FallbackReason instead of swallowing the failure.
type Loader interface {
	Current() (*domain.Dataset, error)
	Refresh() (*domain.Dataset, error)
	Status() (*domain.DatasetStatus, error)
}

type Service struct {
	cfg            *config.Config
	mondayService  monday.MondayIntegrator
	harvestService harvest.HarvestIntegrator
	xeroService    xero.XeroIntegrator

	mu       sync.RWMutex
	snapshot *domain.Dataset
}

func NewService(
	cfg *config.Config,
	mondayService monday.MondayIntegrator,
	harvestService harvest.HarvestIntegrator,
	xeroService xero.XeroIntegrator,
) Loader {
	return &Service{
		cfg:            cfg,
		mondayService:  mondayService,
		harvestService: harvestService,
		xeroService:    xeroService,
	}
}

// Current returns the current snapshot, loading one on first use.
func (s *Service) Current() (*domain.Dataset, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil {
		return snapshot, nil
	}

	return s.Refresh()
}

// Refresh loads a fresh snapshot and swaps it in atomically. Callers that
// read the previous snapshot keep a consistent view; snapshots are never
// mutated after publication.
func (s *Service) Refresh() (*domain.Dataset, error) {
	dataset := s.load()

	snapshotID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating snapshot ID: %w", err)
	}
	dataset.SnapshotID = snapshotID
	dataset.FetchedAt = time.Now().UTC()

	s.mu.Lock()
	s.snapshot = dataset
	s.mu.Unlock()

	log.L.WithFields(log.Fields{
		"snapshot_id":  dataset.SnapshotID,
		"origin":       dataset.Origin,
		"deals":        len(dataset.Deals),
		"time_entries": len(dataset.TimeEntries),
		"invoices":     len(dataset.Invoices),
	}).Info("dataset snapshot refreshed")

	return dataset, nil
}

func (s *Service) Status() (*domain.DatasetStatus, error) {
	dataset, err := s.Current()
	if err != nil {
		return nil, err
	}

	return dataset.Status(), nil
}

// load fetches the three sources concurrently, falling back to demo data
// when credentials are incomplete or any fetch fails.
func (s *Service) load() *domain.Dataset {
	if !s.cfg.Monday.Configured() || !s.cfg.Harvest.Configured() || !s.cfg.Xero.Configured() {
		return DemoDataset("credentials missing for one or more sources")
	}

	var (
		deals       []domain.Deal
		timeEntries []domain.TimeEntry
		invoices    []domain.Invoice

		dealsErr       error
		timeEntriesErr error
		invoicesErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		deals, dealsErr = s.mondayService.ListDeals()
	}()

	go func() {
		defer wg.Done()
		timeEntries, timeEntriesErr = s.harvestService.ListTimeEntries()
	}()

	go func() {
		defer wg.Done()
		invoices, invoicesErr = s.xeroService.ListInvoices()
	}()

	wg.Wait()

	sourceErrors := []struct {
		source string
		err    error
	}{
		{"monday", dealsErr},
		{"harvest", timeEntriesErr},
		{"xero", invoicesErr},
	}

	for _, se := range sourceErrors {
		if se.err != nil {
			log.L.WithError(se.err).WithField("source", se.source).Warn("live fetch failed, falling back to demo data")
			return DemoDataset(fmt.Sprintf("%s fetch failed: %v", se.source, se.err))
		}
	}

	return &domain.Dataset{
		Origin:      domain.OriginLive,
		Deals:       deals,
		TimeEntries: timeEntries,
		Invoices:    invoices,
	}
}
