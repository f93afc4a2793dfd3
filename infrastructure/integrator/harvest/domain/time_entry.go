package domain

// NamedRef is the {id, name} shape Harvest uses for users, projects and
// clients attached to a time entry.
type NamedRef struct {
	Name string `json:"name"`
}

// TimeEntry is one entry as returned by the Harvest API.
type TimeEntry struct {
	SpentDate    string    `json:"spent_date"`
	User         *NamedRef `json:"user"`
	Project      *NamedRef `json:"project"`
	Client       *NamedRef `json:"client"`
	Hours        float64   `json:"hours"`
	Billable     bool      `json:"billable"`
	BillableRate float64   `json:"billable_rate"`
}

// TimeEntriesResponse is the paged envelope of the time_entries endpoint.
type TimeEntriesResponse struct {
	TimeEntries []TimeEntry `json:"time_entries"`
	NextPage    *int        `json:"next_page"`
}
