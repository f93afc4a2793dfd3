package mondayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	mondaydomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/monday/domain"
)

const boardItemsQuery = `
query ($boardID: [ID!]) {
  boards (ids: $boardID) {
    items_page(limit: 100) {
      items {
        name
        column_values {
          id
          text
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// GetBoardItems fetches every item of the deals board via the monday
// GraphQL API.
func (c *MondayClient) GetBoardItems(boardID string) ([]mondaydomain.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	payload := graphqlRequest{
		Query: boardItemsQuery,
		Variables: map[string]any{
			"boardID": []string{boardID},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding board items query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Monday.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating board items request: %w", err)
	}

	req.Header.Set("Authorization", c.config.Monday.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing board items request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board items request failed with status: %s", resp.Status)
	}

	var response mondaydomain.BoardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding board items response: %w", err)
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("monday API error: %s", response.Errors[0].Message)
	}

	if len(response.Data.Boards) == 0 {
		return nil, fmt.Errorf("board %s not found", boardID)
	}

	return response.Data.Boards[0].ItemsPage.Items, nil
}
