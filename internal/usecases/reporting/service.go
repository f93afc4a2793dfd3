package reporting

import (
	"time"

	"github.com/agencydash/analytics-dashboard-api/infrastructure/repository"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
)

// Service implements Reporter on top of the current dataset snapshot.
type Service struct {
	datasets    DatasetProvider
	targetsRepo repository.TeamTargetsRepository
}

func NewService(datasets DatasetProvider, targetsRepo repository.TeamTargetsRepository) Reporter {
	return &Service{
		datasets:    datasets,
		targetsRepo: targetsRepo,
	}
}

func (s *Service) Summary() (*domain.Summary, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	return Summarize(dataset), nil
}

func (s *Service) MonthlyBilling(filters *domain.BillingFilters) ([]domain.MonthlyBillingRow, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	return MonthlyBilling(filterInvoices(dataset.Invoices, filters)), nil
}

func (s *Service) YearlyBilling(filters *domain.BillingFilters) ([]domain.YearlyBillingRow, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	return YearlyBilling(filterInvoices(dataset.Invoices, filters)), nil
}

// filterInvoices applies an invoice-date window. Bounds are inclusive whole
// days; invoices without a parseable date fall out once any bound is set.
func filterInvoices(invoices []domain.Invoice, filters *domain.BillingFilters) []domain.Invoice {
	if filters == nil {
		return invoices
	}

	startSet := filters.StartDate != nil && !filters.StartDate.IsZero()
	endSet := filters.EndDate != nil && !filters.EndDate.IsZero()
	if !startSet && !endSet {
		return invoices
	}

	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.Date == nil {
			continue
		}

		day := time.Date(invoice.Date.Year(), invoice.Date.Month(), invoice.Date.Day(), 0, 0, 0, 0, time.UTC)
		if startSet && day.Before(*filters.StartDate) {
			continue
		}
		if endSet && day.After(*filters.EndDate) {
			continue
		}

		filtered = append(filtered, invoice)
	}

	return filtered
}

func (s *Service) TimeRecordedPerTeam() ([]domain.TeamHoursRow, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	return TimeRecordedPerTeam(dataset.TimeEntries), nil
}

func (s *Service) DealProfitability() ([]domain.DealProfitabilityRow, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	return DealProfitability(dataset.Deals), nil
}

// TeamScorecard uses the stored targets. A database failure degrades to the
// all-zero target map so the scorecard stays available; the miss is logged,
// not hidden in the rows, which then simply show no target comparisons.
func (s *Service) TeamScorecard() ([]domain.ScorecardRow, error) {
	targets, err := s.targetsRepo.GetAll()
	if err != nil {
		log.L.WithError(err).Warn("scorecard: could not load stored targets, comparing against none")
		targets = domain.TargetsByTeam{}
	}

	return s.TeamScorecardWith(targets)
}

func (s *Service) TeamScorecardWith(targets domain.TargetsByTeam) ([]domain.ScorecardRow, error) {
	dataset, err := s.datasets.Current()
	if err != nil {
		return nil, err
	}

	return TeamScorecard(dataset.Deals, dataset.TimeEntries, dataset.Invoices, targets), nil
}
