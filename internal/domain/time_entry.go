package domain

import "time"

// TimeEntry is one recorded block of hours from Harvest. BillableAmount is
// precomputed upstream as hours times the billable rate.
type TimeEntry struct {
	Date           *time.Time `json:"date"`
	Team           string     `json:"team"`
	Project        string     `json:"project"`
	Client         string     `json:"client"`
	Hours          float64    `json:"hours"`
	Billable       bool       `json:"billable"`
	BillableAmount float64    `json:"billable_amount"`
}
