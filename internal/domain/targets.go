package domain

// TeamTargets holds the goal values a team is measured against. A zero field
// means "no target set" and suppresses the corresponding comparison instead
// of producing a division error.
type TeamTargets struct {
	RevenueTarget          float64 `json:"revenue_target"`
	CollectionTarget       float64 `json:"collection_target"`
	UtilizationTargetHours float64 `json:"utilization_target_hours"`
	ProfitabilityTargetPct float64 `json:"profitability_target_pct"`
}

// TargetsByTeam maps a team name to its targets. A team absent from the map
// behaves as if it had the all-zero target object.
type TargetsByTeam map[string]TeamTargets

// IsValid reports whether every target field is non-negative.
func (t TeamTargets) IsValid() bool {
	return t.RevenueTarget >= 0 &&
		t.CollectionTarget >= 0 &&
		t.UtilizationTargetHours >= 0 &&
		t.ProfitabilityTargetPct >= 0
}
