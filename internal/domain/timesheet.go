package domain

// TeamHoursRow aggregates recorded time for one team. Teams with no entries
// never appear; there are no zero rows.
type TeamHoursRow struct {
	Team           string  `json:"team"`
	Hours          float64 `json:"hours"`
	BillableAmount float64 `json:"billable_amount"`
}
