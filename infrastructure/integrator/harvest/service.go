package harvest

import (
	"time"

	harvestdomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest/domain"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest/harvestclient"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

type HarvestIntegrator interface {
	ListTimeEntries() ([]domain.TimeEntry, error)
}

type HarvestService struct {
	cfg    *config.Config
	Client harvestclient.Client
}

func New(cfg *config.Config, client harvestclient.Client) HarvestIntegrator {
	return &HarvestService{
		cfg:    cfg,
		Client: client,
	}
}

// ListTimeEntries pulls the configured lookback window of time entries and
// maps them to TimeEntry rows. The billable amount is derived here, hours
// times the billable rate, so the derivation core never needs rate data.
func (s *HarvestService) ListTimeEntries() ([]domain.TimeEntry, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -s.cfg.Harvest.LookbackDays)

	params := harvestclient.TimeEntriesParams{
		From: start.Format(time.DateOnly),
		To:   end.Format(time.DateOnly),
	}

	resp, err := s.Client.GetTimeEntries(params)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(resp))
	for _, e := range resp {
		entries = append(entries, domain.TimeEntry{
			Date:           utils.CoerceDate(e.SpentDate),
			Team:           refName(e.User),
			Project:        refName(e.Project),
			Client:         refName(e.Client),
			Hours:          e.Hours,
			Billable:       e.Billable,
			BillableAmount: utils.RoundWithTwoDecimalPlace(e.BillableRate * e.Hours),
		})
	}

	return entries, nil
}

func refName(ref *harvestdomain.NamedRef) string {
	if ref == nil || ref.Name == "" {
		return domain.UnknownTeam
	}
	return ref.Name
}
