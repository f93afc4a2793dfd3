package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
)

// GetTeamScorecard returns the per-team scorecard compared against the
// stored targets.
func GetTeamScorecard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TeamScorecard()
		if err != nil {
			log.L.WithError(err).Error("failed to compute team scorecard")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, rows)
	}
}

// PreviewTeamScorecard recomputes the scorecard against targets supplied in
// the request body without persisting them, the interactive what-if path.
func PreviewTeamScorecard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var targets domain.TargetsByTeam
		if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		for team, teamTargets := range targets {
			if !teamTargets.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "target values must be non-negative", map[string]any{
					"team": team,
				})
				return
			}
		}

		rows, err := service.TeamScorecardWith(targets)
		if err != nil {
			log.L.WithError(err).Error("failed to compute scorecard preview")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, rows)
	}
}
