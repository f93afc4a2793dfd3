package mondayclient

import (
	"net/http"
	"time"

	mondaydomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
)

type Client interface {
	GetBoardItems(boardID string) ([]mondaydomain.Item, error)
}

type MondayClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MondayClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
