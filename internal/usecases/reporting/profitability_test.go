package reporting

import (
	"testing"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDealProfitability(t *testing.T) {
	tests := []struct {
		name     string
		deals    []domain.Deal
		validate func(t *testing.T, rows []domain.DealProfitabilityRow)
	}{
		{
			name: "profit and margin are derived per deal",
			deals: []domain.Deal{
				{DealName: "Website relaunch", Team: "Delivery", DealValue: 1000, CostToDeliver: 400},
			},
			validate: func(t *testing.T, rows []domain.DealProfitabilityRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, 600.0, rows[0].Profit)
				assert.Equal(t, 60.0, rows[0].ProfitMarginPct)
			},
		},
		{
			name: "zero deal value gives zero margin even at a loss",
			deals: []domain.Deal{
				{DealName: "Pro bono", DealValue: 0, CostToDeliver: 500},
			},
			validate: func(t *testing.T, rows []domain.DealProfitabilityRow) {
				assert.Equal(t, -500.0, rows[0].Profit)
				assert.Equal(t, 0.0, rows[0].ProfitMarginPct)
			},
		},
		{
			name: "rows sort by profit descending, equal profits keep input order",
			deals: []domain.Deal{
				{DealName: "A", DealValue: 100, CostToDeliver: 50},
				{DealName: "B", DealValue: 500, CostToDeliver: 100},
				{DealName: "C", DealValue: 200, CostToDeliver: 150},
				{DealName: "D", DealValue: 300, CostToDeliver: 250},
			},
			validate: func(t *testing.T, rows []domain.DealProfitabilityRow) {
				assert.Equal(t, "B", rows[0].DealName)
				assert.Equal(t, "A", rows[1].DealName)
				assert.Equal(t, "C", rows[2].DealName)
				assert.Equal(t, "D", rows[3].DealName)
			},
		},
		{
			name: "source fields are preserved on each row",
			deals: []domain.Deal{
				{DealName: "Retainer", Team: "Growth", DealValue: 900, CostToDeliver: 300},
			},
			validate: func(t *testing.T, rows []domain.DealProfitabilityRow) {
				assert.Equal(t, "Retainer", rows[0].DealName)
				assert.Equal(t, "Growth", rows[0].Team)
				assert.Equal(t, 900.0, rows[0].DealValue)
				assert.Equal(t, 300.0, rows[0].CostToDeliver)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, DealProfitability(tt.deals))
		})
	}
}

func TestDealProfitabilityDoesNotMutateInput(t *testing.T) {
	deals := []domain.Deal{
		{DealName: "first", DealValue: 10},
		{DealName: "second", DealValue: 20},
	}

	DealProfitability(deals)

	assert.Equal(t, "first", deals[0].DealName)
	assert.Equal(t, "second", deals[1].DealName)
}
