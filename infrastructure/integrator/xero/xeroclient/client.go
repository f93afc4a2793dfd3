package xeroclient

import (
	"net/http"
	"time"

	xerodomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
)

type Client interface {
	GetInvoices() ([]xerodomain.Invoice, error)
}

type XeroClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &XeroClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
