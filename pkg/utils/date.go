package utils

import (
	"strconv"
	"strings"
	"time"
)

// layouts accepted from the external sources. Xero sends full timestamps,
// monday and Harvest send plain dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDate parses a strict YYYY-MM-DD query parameter. An empty string is
// accepted and yields the zero time.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// CoerceDate parses a source date on a best-effort basis. It returns nil
// when the value is empty or unparseable; callers bucket nil dates instead
// of rejecting the row.
func CoerceDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return &date
		}
	}

	return nil
}

// CoerceNumber parses a source numeric string, returning 0 for anything that
// is not a number. Mirrors the tolerant coercion the dashboard promises for
// additive columns.
func CoerceNumber(raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}

	return value
}
