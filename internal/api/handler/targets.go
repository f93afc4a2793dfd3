package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/targeting"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// ListTargets returns the stored targets for every team.
func ListTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targets, err := service.ListTargets()
		if err != nil {
			log.L.WithError(err).Error("failed to list team targets")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list targets", nil)
			return
		}

		writeJSON(w, targets)
	}
}

// SetTargets stores the target values for one team, replacing any previous
// values.
func SetTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := httprouter.ParamsFromContext(r.Context()).ByName("team")
		if team == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "team is required", nil)
			return
		}

		var targets domain.TeamTargets
		if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.SetTargets(team, targets); err != nil {
			if errors.Is(err, targeting.ErrNegativeTarget) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			log.L.WithError(err).WithField("team", team).Error("failed to save team targets")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to save targets", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteTargets removes the stored targets for one team.
func DeleteTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := httprouter.ParamsFromContext(r.Context()).ByName("team")
		if team == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "team is required", nil)
			return
		}

		if err := service.ClearTargets(team); err != nil {
			log.L.WithError(err).WithField("team", team).Error("failed to delete team targets")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to delete targets", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
