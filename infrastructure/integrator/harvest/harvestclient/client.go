package harvestclient

import (
	"net/http"
	"time"

	harvestdomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
)

type TimeEntriesParams struct {
	From string
	To   string
}

type Client interface {
	GetTimeEntries(params TimeEntriesParams) ([]harvestdomain.TimeEntry, error)
}

type HarvestClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &HarvestClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
