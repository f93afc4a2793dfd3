package harvestclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	harvestdomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/harvest/domain"
)

// GetTimeEntries fetches time entries for the given window, following
// Harvest's pagination until exhausted.
func (c *HarvestClient) GetTimeEntries(params TimeEntriesParams) ([]harvestdomain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	entries := make([]harvestdomain.TimeEntry, 0)
	page := 1

	for {
		endpoint, err := url.Parse(c.config.Harvest.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing harvest base URL: %w", err)
		}
		endpoint.Path = path.Join(endpoint.Path, "/time_entries")

		query := endpoint.Query()
		query.Set("from", params.From)
		query.Set("to", params.To)
		query.Set("per_page", "200")
		query.Set("page", fmt.Sprintf("%d", page))
		endpoint.RawQuery = query.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("creating time entries request: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+c.config.Harvest.Token)
		req.Header.Set("Harvest-Account-ID", c.config.Harvest.AccountID)
		req.Header.Set("User-Agent", "analytics-dashboard-api")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing time entries request: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("time entries request failed with status: %s", resp.Status)
		}

		var response harvestdomain.TimeEntriesResponse
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("decoding time entries response: %w", err)
		}
		resp.Body.Close()

		entries = append(entries, response.TimeEntries...)

		if response.NextPage == nil {
			break
		}
		page = *response.NextPage
	}

	return entries, nil
}
