package domain

import "time"

// DatasetOrigin tells the caller where a dataset actually came from, so a
// demo fallback is always distinguishable from a live fetch.
type DatasetOrigin string

const (
	OriginLive DatasetOrigin = "live"
	OriginDemo DatasetOrigin = "demo"
)

// Dataset is one immutable snapshot of the three source tables. The
// derivation layer recomputes every summary table from a snapshot on each
// request; nothing derived is ever stored.
type Dataset struct {
	SnapshotID     string        `json:"snapshot_id"`
	Origin         DatasetOrigin `json:"origin"`
	FallbackReason string        `json:"fallback_reason,omitempty"`
	FetchedAt      time.Time     `json:"fetched_at"`
	Deals          []Deal        `json:"deals"`
	TimeEntries    []TimeEntry   `json:"time_entries"`
	Invoices       []Invoice     `json:"invoices"`
}

// DatasetStatus summarizes the current snapshot for the status endpoint.
type DatasetStatus struct {
	SnapshotID     string        `json:"snapshot_id"`
	Origin         DatasetOrigin `json:"origin"`
	FallbackReason string        `json:"fallback_reason,omitempty"`
	FetchedAt      time.Time     `json:"fetched_at"`
	Deals          int           `json:"deals"`
	TimeEntries    int           `json:"time_entries"`
	Invoices       int           `json:"invoices"`
}

// Status derives the status view of a snapshot.
func (d *Dataset) Status() *DatasetStatus {
	return &DatasetStatus{
		SnapshotID:     d.SnapshotID,
		Origin:         d.Origin,
		FallbackReason: d.FallbackReason,
		FetchedAt:      d.FetchedAt,
		Deals:          len(d.Deals),
		TimeEntries:    len(d.TimeEntries),
		Invoices:       len(d.Invoices),
	}
}
