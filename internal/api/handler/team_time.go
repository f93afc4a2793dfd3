package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
)

// GetTeamTime returns hours recorded and billable amount per team, busiest
// team first.
func GetTeamTime(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TimeRecordedPerTeam()
		if err != nil {
			log.L.WithError(err).Error("failed to compute team time report")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, rows)
	}
}
