package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/scheduler"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/acquiring"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
)

// GetDatasetStatus reports which snapshot is being served, where it came
// from, its row counts, and the refresh scheduler state.
func GetDatasetStatus(loader acquiring.Loader, refreshService *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := loader.Status()
		if err != nil {
			log.L.WithError(err).Error("failed to read dataset status")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		response := map[string]any{
			"dataset":   status,
			"scheduler": refreshService.GetStatus(),
		}

		writeJSON(w, response)
	}
}

// TriggerDatasetRefresh starts a background re-fetch of all sources.
func TriggerDatasetRefresh(refreshService *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshService.TriggerManualRefresh()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "dataset refresh started",
		}); err != nil {
			log.L.WithError(err).Error("failed to encode response")
		}
	}
}
