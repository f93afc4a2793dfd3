package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}
