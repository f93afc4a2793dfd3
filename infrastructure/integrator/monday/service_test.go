package monday

import (
	"errors"
	"testing"

	mondaydomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	items []mondaydomain.Item
	err   error
}

func (s *stubClient) GetBoardItems(boardID string) ([]mondaydomain.Item, error) {
	return s.items, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Monday: config.Monday{BoardID: "123"},
	}
}

func item(name string, columns map[string]string) mondaydomain.Item {
	it := mondaydomain.Item{Name: name}
	for id, text := range columns {
		it.ColumnValues = append(it.ColumnValues, mondaydomain.ColumnValue{ID: id, Text: text})
	}
	return it
}

func TestListDeals(t *testing.T) {
	tests := []struct {
		name     string
		items    []mondaydomain.Item
		validate func(t *testing.T, deals []domain.Deal, err error)
	}{
		{
			name: "rows map onto deals with coerced values",
			items: []mondaydomain.Item{
				item("Website relaunch", map[string]string{
					mondaydomain.ColumnTeam:          "Delivery",
					mondaydomain.ColumnCloseDate:     "2024-03-15",
					mondaydomain.ColumnDealValue:     "12000",
					mondaydomain.ColumnCostToDeliver: "4000",
				}),
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Len(t, deals, 1)
				assert.Equal(t, "Website relaunch", deals[0].DealName)
				assert.Equal(t, "Delivery", deals[0].Team)
				assert.NotNil(t, deals[0].CloseDate)
				assert.Equal(t, 12000.0, deals[0].DealValue)
				assert.Equal(t, 4000.0, deals[0].CostToDeliver)
			},
		},
		{
			name: "missing team falls back to Unknown",
			items: []mondaydomain.Item{
				item("No team deal", map[string]string{
					mondaydomain.ColumnDealValue: "500",
				}),
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.UnknownTeam, deals[0].Team)
			},
		},
		{
			name: "unparseable values coerce instead of failing the row",
			items: []mondaydomain.Item{
				item("Messy deal", map[string]string{
					mondaydomain.ColumnTeam:      "Growth",
					mondaydomain.ColumnCloseDate: "soon",
					mondaydomain.ColumnDealValue: "n/a",
				}),
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Nil(t, deals[0].CloseDate)
				assert.Equal(t, 0.0, deals[0].DealValue)
			},
		},
		{
			name: "board without the deal value column fails fast",
			items: []mondaydomain.Item{
				item("Deal", map[string]string{
					mondaydomain.ColumnTeam: "Growth",
				}),
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "deal_value")
				assert.Nil(t, deals)
			},
		},
		{
			name:  "empty board is fine",
			items: nil,
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Empty(t, deals)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := New(testConfig(), &stubClient{items: tt.items})
			deals, err := service.ListDeals()
			tt.validate(t, deals, err)
		})
	}
}

func TestListDealsClientError(t *testing.T) {
	service := New(testConfig(), &stubClient{err: errors.New("boom")})

	deals, err := service.ListDeals()
	assert.Error(t, err)
	assert.Nil(t, deals)
}
