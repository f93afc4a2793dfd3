package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
)

// GetDealProfitability returns every deal with its derived profit and
// margin, most profitable first.
func GetDealProfitability(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.DealProfitability()
		if err != nil {
			log.L.WithError(err).Error("failed to compute deal profitability")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, rows)
	}
}
