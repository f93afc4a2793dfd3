package handler

import (
	"net/http"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/usecases/reporting"
	"github.com/agencydash/analytics-dashboard-api/pkg/apiErrors"
	"github.com/agencydash/analytics-dashboard-api/pkg/log"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

// GetMonthlyBilling returns billed, collected and outstanding totals per
// calendar month, optionally restricted by start_date/end_date query
// parameters (YYYY-MM-DD, inclusive). Invoices with an unparseable date
// land in a sentinel bucket rather than being dropped.
func GetMonthlyBilling(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := billingFilters(w, r)
		if !ok {
			return
		}

		rows, err := service.MonthlyBilling(filters)
		if err != nil {
			logger.WithError(err).Error("failed to compute monthly billing")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, rows)
	}
}

// GetYearlyBilling returns the same totals per calendar year.
func GetYearlyBilling(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := billingFilters(w, r)
		if !ok {
			return
		}

		rows, err := service.YearlyBilling(filters)
		if err != nil {
			logger.WithError(err).Error("failed to compute yearly billing")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset unavailable", nil)
			return
		}

		writeJSON(w, rows)
	}
}

func billingFilters(w http.ResponseWriter, r *http.Request) (*domain.BillingFilters, bool) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithField("start_date", r.URL.Query().Get("start_date")).
			Warn("billing: invalid start_date parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithField("end_date", r.URL.Query().Get("end_date")).
			Warn("billing: invalid end_date parameter")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
		return nil, false
	}

	return &domain.BillingFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}
