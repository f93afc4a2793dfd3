package domain

// DealProfitabilityRow is a Deal extended with its derived profit fields.
// ProfitMarginPct is defined as 0 when DealValue is 0, never NaN.
type DealProfitabilityRow struct {
	Deal
	Profit          float64 `json:"profit"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
}
