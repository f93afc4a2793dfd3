package domain

// Column IDs expected on the deals board.
const (
	ColumnTeam          = "team"
	ColumnCloseDate     = "close_date"
	ColumnDealValue     = "deal_value"
	ColumnCostToDeliver = "cost_to_deliver"
)

// ColumnValue is one cell of a board item, keyed by column ID. Text is the
// display value; monday exposes typed values too but the dashboard only
// needs the text form.
type ColumnValue struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Item is one row of the deals board.
type Item struct {
	Name         string        `json:"name"`
	ColumnValues []ColumnValue `json:"column_values"`
}

// ColumnMap flattens the item's column values into a lookup by column ID.
func (i Item) ColumnMap() map[string]string {
	columns := make(map[string]string, len(i.ColumnValues))
	for _, col := range i.ColumnValues {
		columns[col.ID] = col.Text
	}
	return columns
}

type ItemsPage struct {
	Items []Item `json:"items"`
}

type Board struct {
	ItemsPage ItemsPage `json:"items_page"`
}

// BoardsResponse is the GraphQL envelope returned by the monday API.
type BoardsResponse struct {
	Data struct {
		Boards []Board `json:"boards"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
