package reporting

import (
	"sort"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
)

const monthKeyLayout = "2006-01"

// MonthlyBilling groups invoices by calendar month, summing billed,
// collected and outstanding amounts. Invoices whose date did not parse land
// in the "unparseable" bucket instead of being dropped, so the breakdown
// always reconciles with the headline totals. Rows come back ascending by
// month key; the sentinel bucket sorts after every real month.
func MonthlyBilling(invoices []domain.Invoice) []domain.MonthlyBillingRow {
	groups := make(map[string]*domain.MonthlyBillingRow)

	for _, inv := range invoices {
		key := domain.UnparseableMonth
		if inv.Date != nil {
			key = inv.Date.Format(monthKeyLayout)
		}

		row, ok := groups[key]
		if !ok {
			row = &domain.MonthlyBillingRow{Month: key}
			groups[key] = row
		}

		row.TotalBilled += inv.Total
		row.AmountCollected += inv.AmountPaid
		row.Outstanding += inv.AmountDue
	}

	rows := make([]domain.MonthlyBillingRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})

	return rows
}

// YearlyBilling is the same aggregation keyed by calendar year, with year 0
// reserved for invoices whose date did not parse.
func YearlyBilling(invoices []domain.Invoice) []domain.YearlyBillingRow {
	groups := make(map[int]*domain.YearlyBillingRow)

	for _, inv := range invoices {
		key := domain.UnparseableYear
		if inv.Date != nil {
			key = inv.Date.Year()
		}

		row, ok := groups[key]
		if !ok {
			row = &domain.YearlyBillingRow{Year: key}
			groups[key] = row
		}

		row.TotalBilled += inv.Total
		row.AmountCollected += inv.AmountPaid
		row.Outstanding += inv.AmountDue
	}

	rows := make([]domain.YearlyBillingRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Year < rows[j].Year
	})

	return rows
}
