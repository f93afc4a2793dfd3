package monday

import (
	"fmt"

	mondaydomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/domain"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/mondayclient"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

type MondayIntegrator interface {
	ListDeals() ([]domain.Deal, error)
}

type MondayService struct {
	cfg    *config.Config
	Client mondayclient.Client
}

func New(cfg *config.Config, client mondayclient.Client) MondayIntegrator {
	return &MondayService{
		cfg:    cfg,
		Client: client,
	}
}

// ListDeals pulls the deals board and maps each item to a Deal row. Missing
// team falls back to "Unknown", unparseable close dates become nil, and
// non-numeric amounts coerce to 0. A board with no deal_value column at all
// is a contract violation since every derived metric depends on it.
func (s *MondayService) ListDeals() ([]domain.Deal, error) {
	items, err := s.Client.GetBoardItems(s.cfg.Monday.BoardID)
	if err != nil {
		return nil, err
	}

	deals := make([]domain.Deal, 0, len(items))
	hasDealValue := false

	for _, item := range items {
		columns := item.ColumnMap()

		if _, ok := columns[mondaydomain.ColumnDealValue]; ok {
			hasDealValue = true
		}

		team := columns[mondaydomain.ColumnTeam]
		if team == "" {
			team = domain.UnknownTeam
		}

		deals = append(deals, domain.Deal{
			DealName:      item.Name,
			Team:          team,
			CloseDate:     utils.CoerceDate(columns[mondaydomain.ColumnCloseDate]),
			DealValue:     utils.CoerceNumber(columns[mondaydomain.ColumnDealValue]),
			CostToDeliver: utils.CoerceNumber(columns[mondaydomain.ColumnCostToDeliver]),
		})
	}

	if len(deals) > 0 && !hasDealValue {
		return nil, fmt.Errorf("monday board %s: required column %q is missing", s.cfg.Monday.BoardID, mondaydomain.ColumnDealValue)
	}

	return deals, nil
}
