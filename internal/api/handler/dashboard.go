package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
)

// GetDashboardSummary returns the headline metrics for the dashboard header.
func GetDashboardSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary()
		if err != nil {
			log.L.WithError(err).Error("failed to compute dashboard summary")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, summary)
	}
}
