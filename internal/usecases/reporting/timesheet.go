package reporting

import (
	"sort"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
)

// TimeRecordedPerTeam groups time entries by team, summing hours and
// billable amount. Team matching is exact and case-sensitive; teams with no
// entries never appear. Rows come back with the busiest team first, ties
// broken by team name ascending so the ordering is deterministic.
func TimeRecordedPerTeam(entries []domain.TimeEntry) []domain.TeamHoursRow {
	groups := make(map[string]*domain.TeamHoursRow)

	for _, entry := range entries {
		row, ok := groups[entry.Team]
		if !ok {
			row = &domain.TeamHoursRow{Team: entry.Team}
			groups[entry.Team] = row
		}

		row.Hours += entry.Hours
		row.BillableAmount += entry.BillableAmount
	}

	rows := make([]domain.TeamHoursRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		return rows[i].Team < rows[j].Team
	})

	return rows
}
