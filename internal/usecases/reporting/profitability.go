package reporting

import (
	"sort"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

// DealProfitability extends every deal with profit and profit margin. The
// margin of a zero-value deal is defined as 0, even when it has delivery
// cost. Rows come back most profitable first; equal profits keep their
// input order.
func DealProfitability(deals []domain.Deal) []domain.DealProfitabilityRow {
	rows := make([]domain.DealProfitabilityRow, 0, len(deals))

	for _, deal := range deals {
		profit := deal.DealValue - deal.CostToDeliver

		rows = append(rows, domain.DealProfitabilityRow{
			Deal:            deal,
			Profit:          profit,
			ProfitMarginPct: utils.SafeRatio(profit, deal.DealValue),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Profit > rows[j].Profit
	})

	return rows
}
