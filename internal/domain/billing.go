package domain

import "time"

// Sentinel buckets for invoices whose date could not be parsed. They keep the
// grouped breakdown reconcilable with the headline totals instead of silently
// dropping rows.
const (
	UnparseableMonth = "unparseable"
	UnparseableYear  = 0
)

// BillingFilters restricts the billing breakdowns to an invoice-date window.
// A zero bound leaves that side open. When either bound is set, invoices
// whose date did not parse are excluded, since they cannot be placed inside
// or outside the window.
type BillingFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// MonthlyBillingRow aggregates invoices for one calendar month. Month is a
// YYYY-MM key, sortable both lexicographically and chronologically.
type MonthlyBillingRow struct {
	Month           string  `json:"month"`
	TotalBilled     float64 `json:"total_billed"`
	AmountCollected float64 `json:"amount_collected"`
	Outstanding     float64 `json:"outstanding"`
}

// YearlyBillingRow is the same aggregation keyed by calendar year.
type YearlyBillingRow struct {
	Year            int     `json:"year"`
	TotalBilled     float64 `json:"total_billed"`
	AmountCollected float64 `json:"amount_collected"`
	Outstanding     float64 `json:"outstanding"`
}
