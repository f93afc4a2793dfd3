package domain

// ScorecardRow is the composite per-team view: actuals from deals and time
// entries plus the actual-vs-target ratios. CollectedEstimate is a
// proportional allocation of all payments received (invoices carry no team),
// so it is an approximation that assumes collections track revenue share,
// not a ledger fact.
type ScorecardRow struct {
	Team                     string  `json:"team"`
	Revenue                  float64 `json:"revenue"`
	Profit                   float64 `json:"profit"`
	ProfitabilityPct         float64 `json:"profitability_pct"`
	Hours                    float64 `json:"hours"`
	CollectedEstimate        float64 `json:"collected_estimate"`
	RevenueVsTargetPct       float64 `json:"revenue_vs_target_pct"`
	CollectionVsTargetPct    float64 `json:"collection_vs_target_pct"`
	UtilizationVsTargetPct   float64 `json:"utilization_vs_target_pct"`
	ProfitabilityVsTargetPct float64 `json:"profitability_vs_target_pct"`
}

// Summary holds the headline metrics shown above the dashboard tables.
type Summary struct {
	TotalBilled       float64 `json:"total_billed"`
	AmountCollected   float64 `json:"amount_collected"`
	TotalHours        float64 `json:"total_hours"`
	AverageDealMargin float64 `json:"average_deal_margin_pct"`
}
