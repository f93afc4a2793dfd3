package domain

import "time"

// Deal is one row from the monday.com deals board. Numeric fields arrive
// already coerced by the acquisition layer (non-numeric source values become
// 0) and CloseDate is nil when the source value was missing or unparseable.
type Deal struct {
	DealName      string     `json:"deal_name"`
	Team          string     `json:"team"`
	CloseDate     *time.Time `json:"close_date"`
	DealValue     float64    `json:"deal_value"`
	CostToDeliver float64    `json:"cost_to_deliver"`
}

// UnknownTeam is assigned when a deal carries no team at all.
const UnknownTeam = "Unknown"
