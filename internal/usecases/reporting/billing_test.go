package reporting

import (
	"testing"
	"time"

	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestMonthlyBilling(t *testing.T) {
	tests := []struct {
		name     string
		invoices []domain.Invoice
		validate func(t *testing.T, rows []domain.MonthlyBillingRow)
	}{
		{
			name:     "no invoices yields no rows",
			invoices: nil,
			validate: func(t *testing.T, rows []domain.MonthlyBillingRow) {
				assert.Empty(t, rows)
			},
		},
		{
			name: "invoices in the same month are summed",
			invoices: []domain.Invoice{
				{Date: datePtr(2024, 1, 5), Total: 100, AmountPaid: 80, AmountDue: 20},
				{Date: datePtr(2024, 1, 28), Total: 50, AmountPaid: 50, AmountDue: 0},
			},
			validate: func(t *testing.T, rows []domain.MonthlyBillingRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "2024-01", rows[0].Month)
				assert.Equal(t, 150.0, rows[0].TotalBilled)
				assert.Equal(t, 130.0, rows[0].AmountCollected)
				assert.Equal(t, 20.0, rows[0].Outstanding)
			},
		},
		{
			name: "months sort ascending",
			invoices: []domain.Invoice{
				{Date: datePtr(2024, 3, 1), Total: 1},
				{Date: datePtr(2023, 12, 1), Total: 2},
				{Date: datePtr(2024, 1, 1), Total: 3},
			},
			validate: func(t *testing.T, rows []domain.MonthlyBillingRow) {
				assert.Len(t, rows, 3)
				assert.Equal(t, "2023-12", rows[0].Month)
				assert.Equal(t, "2024-01", rows[1].Month)
				assert.Equal(t, "2024-03", rows[2].Month)
			},
		},
		{
			name: "nil dates land in the sentinel bucket, not dropped",
			invoices: []domain.Invoice{
				{Date: datePtr(2024, 1, 1), Total: 100, AmountPaid: 100},
				{Date: nil, Total: 40, AmountPaid: 10, AmountDue: 30},
				{Date: nil, Total: 60, AmountPaid: 0, AmountDue: 60},
			},
			validate: func(t *testing.T, rows []domain.MonthlyBillingRow) {
				assert.Len(t, rows, 2)

				assert.Equal(t, "2024-01", rows[0].Month)

				sentinel := rows[1]
				assert.Equal(t, domain.UnparseableMonth, sentinel.Month)
				assert.Equal(t, 100.0, sentinel.TotalBilled)
				assert.Equal(t, 10.0, sentinel.AmountCollected)
				assert.Equal(t, 90.0, sentinel.Outstanding)

				// The breakdown still reconciles with the raw totals.
				var billed float64
				for _, row := range rows {
					billed += row.TotalBilled
				}
				assert.Equal(t, 200.0, billed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, MonthlyBilling(tt.invoices))
		})
	}
}

func TestYearlyBilling(t *testing.T) {
	invoices := []domain.Invoice{
		{Date: datePtr(2023, 6, 1), Total: 100, AmountPaid: 100},
		{Date: datePtr(2024, 2, 1), Total: 200, AmountPaid: 50, AmountDue: 150},
		{Date: datePtr(2024, 11, 1), Total: 300, AmountPaid: 300},
		{Date: nil, Total: 10, AmountDue: 10},
	}

	rows := YearlyBilling(invoices)

	assert.Len(t, rows, 3)

	// Year 0 is the sentinel and sorts first.
	assert.Equal(t, domain.UnparseableYear, rows[0].Year)
	assert.Equal(t, 10.0, rows[0].TotalBilled)

	assert.Equal(t, 2023, rows[1].Year)
	assert.Equal(t, 100.0, rows[1].TotalBilled)

	assert.Equal(t, 2024, rows[2].Year)
	assert.Equal(t, 500.0, rows[2].TotalBilled)
	assert.Equal(t, 350.0, rows[2].AmountCollected)
	assert.Equal(t, 150.0, rows[2].Outstanding)
}
