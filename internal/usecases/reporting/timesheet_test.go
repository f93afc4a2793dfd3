package reporting

import (
	"testing"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTimeRecordedPerTeam(t *testing.T) {
	tests := []struct {
		name     string
		entries  []domain.TimeEntry
		validate func(t *testing.T, rows []domain.TeamHoursRow)
	}{
		{
			name:    "no entries yields no rows",
			entries: nil,
			validate: func(t *testing.T, rows []domain.TeamHoursRow) {
				assert.Empty(t, rows)
			},
		},
		{
			name: "entries are grouped per team",
			entries: []domain.TimeEntry{
				{Team: "Delivery", Hours: 4, BillableAmount: 400},
				{Team: "Growth", Hours: 2, BillableAmount: 300},
				{Team: "Delivery", Hours: 3.5, BillableAmount: 350},
			},
			validate: func(t *testing.T, rows []domain.TeamHoursRow) {
				assert.Len(t, rows, 2)

				assert.Equal(t, "Delivery", rows[0].Team)
				assert.Equal(t, 7.5, rows[0].Hours)
				assert.Equal(t, 750.0, rows[0].BillableAmount)

				assert.Equal(t, "Growth", rows[1].Team)
				assert.Equal(t, 2.0, rows[1].Hours)
			},
		},
		{
			name: "team matching is case sensitive",
			entries: []domain.TimeEntry{
				{Team: "growth", Hours: 1},
				{Team: "Growth", Hours: 2},
			},
			validate: func(t *testing.T, rows []domain.TeamHoursRow) {
				assert.Len(t, rows, 2)
			},
		},
		{
			name: "equal hours tie-break on team name ascending",
			entries: []domain.TimeEntry{
				{Team: "Operations", Hours: 5},
				{Team: "Delivery", Hours: 5},
			},
			validate: func(t *testing.T, rows []domain.TeamHoursRow) {
				assert.Equal(t, "Delivery", rows[0].Team)
				assert.Equal(t, "Operations", rows[1].Team)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, TimeRecordedPerTeam(tt.entries))
		})
	}
}
