package reporting

import (
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
)

// DatasetProvider hands out the current snapshot of the three source
// tables. The reporting service never cares whether a snapshot is live or
// demo data; it derives the same tables either way.
type DatasetProvider interface {
	Current() (*domain.Dataset, error)
}

// Reporter derives the dashboard summary tables from the current dataset.
// Every derivation is a pure function of the snapshot; nothing is cached
// between calls.
type Reporter interface {
	// Summary returns the headline metrics for the dashboard header.
	Summary() (*domain.Summary, error)

	// MonthlyBilling returns billed/collected/outstanding totals per
	// calendar month, optionally restricted to an invoice-date window.
	MonthlyBilling(filters *domain.BillingFilters) ([]domain.MonthlyBillingRow, error)

	// YearlyBilling returns the same totals per calendar year.
	YearlyBilling(filters *domain.BillingFilters) ([]domain.YearlyBillingRow, error)

	// TimeRecordedPerTeam returns recorded hours and billable amount per
	// team.
	TimeRecordedPerTeam() ([]domain.TeamHoursRow, error)

	// DealProfitability returns every deal with its derived profit fields.
	DealProfitability() ([]domain.DealProfitabilityRow, error)

	// TeamScorecard composes the per-team scorecard against the stored
	// targets.
	TeamScorecard() ([]domain.ScorecardRow, error)

	// TeamScorecardWith composes the scorecard against caller-supplied
	// targets, the interactive what-if path.
	TeamScorecardWith(targets domain.TargetsByTeam) ([]domain.ScorecardRow, error)
}
