package xeroclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	xerodomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/domain"
)

// GetInvoices fetches the full invoice list for the configured tenant.
func (c *XeroClient) GetInvoices() ([]xerodomain.Invoice, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Xero.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing xero base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/Invoices")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating invoices request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Xero.Token)
	req.Header.Set("Xero-tenant-id", c.config.Xero.TenantID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing invoices request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invoices request failed with status: %s", resp.Status)
	}

	var response xerodomain.InvoicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding invoices response: %w", err)
	}

	return response.Invoices, nil
}
