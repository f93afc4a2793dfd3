package reporting

import (
	"sort"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

// teamActuals accumulates the deal-side metrics for one team before the
// outer join with the time side.
type teamActuals struct {
	revenue float64
	profit  float64
}

// TeamScorecard composes the per-team scorecard from the three source
// tables and the target map. A team appearing in either the deal set or the
// time-entry set gets exactly one row; fields missing on one side default
// to 0. Collections are not team-attributed in the source data, so the
// total collected across all invoices is allocated proportionally to each
// team's revenue share. Every vs-target ratio is 0 when the target is 0;
// no target set means no comparison.
func TeamScorecard(
	deals []domain.Deal,
	entries []domain.TimeEntry,
	invoices []domain.Invoice,
	targets domain.TargetsByTeam,
) []domain.ScorecardRow {
	byTeam := make(map[string]*teamActuals)
	for _, row := range DealProfitability(deals) {
		actuals, ok := byTeam[row.Team]
		if !ok {
			actuals = &teamActuals{}
			byTeam[row.Team] = actuals
		}
		actuals.revenue += row.DealValue
		actuals.profit += row.Profit
	}

	timePerTeam := make(map[string]domain.TeamHoursRow)
	for _, row := range TimeRecordedPerTeam(entries) {
		timePerTeam[row.Team] = row
	}

	// Outer union of the two team sets.
	teams := make(map[string]bool, len(byTeam)+len(timePerTeam))
	for team := range byTeam {
		teams[team] = true
	}
	for team := range timePerTeam {
		teams[team] = true
	}

	var totalRevenue float64
	for _, actuals := range byTeam {
		totalRevenue += actuals.revenue
	}

	var totalCollected float64
	for _, inv := range invoices {
		totalCollected += inv.AmountPaid
	}

	rows := make([]domain.ScorecardRow, 0, len(teams))
	for team := range teams {
		var revenue, profit float64
		if actuals, ok := byTeam[team]; ok {
			revenue = actuals.revenue
			profit = actuals.profit
		}

		var hours float64
		if timeRow, ok := timePerTeam[team]; ok {
			hours = timeRow.Hours
		}

		profitabilityPct := utils.SafeRatio(profit, revenue)

		// Proportional allocation; 0 for everyone when there is no revenue
		// at all.
		var collected float64
		if totalRevenue > 0 {
			collected = totalCollected * revenue / totalRevenue
		}

		t := targets[team]

		rows = append(rows, domain.ScorecardRow{
			Team:                     team,
			Revenue:                  revenue,
			Profit:                   profit,
			ProfitabilityPct:         profitabilityPct,
			Hours:                    hours,
			CollectedEstimate:        collected,
			RevenueVsTargetPct:       utils.SafeRatio(revenue, t.RevenueTarget),
			CollectionVsTargetPct:    utils.SafeRatio(collected, t.CollectionTarget),
			UtilizationVsTargetPct:   utils.SafeRatio(hours, t.UtilizationTargetHours),
			ProfitabilityVsTargetPct: utils.SafeRatio(profitabilityPct, t.ProfitabilityTargetPct),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].Team < rows[j].Team
	})

	return rows
}

// Summarize derives the headline metrics shown above the dashboard tables.
func Summarize(dataset *domain.Dataset) *domain.Summary {
	summary := &domain.Summary{}

	for _, inv := range dataset.Invoices {
		summary.TotalBilled += inv.Total
		summary.AmountCollected += inv.AmountPaid
	}

	for _, entry := range dataset.TimeEntries {
		summary.TotalHours += entry.Hours
	}

	if len(dataset.Deals) > 0 {
		var marginSum float64
		for _, row := range DealProfitability(dataset.Deals) {
			marginSum += row.ProfitMarginPct
		}
		summary.AverageDealMargin = marginSum / float64(len(dataset.Deals))
	}

	return summary
}
