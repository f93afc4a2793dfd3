package xero

import (
	"errors"
	"testing"

	xerodomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/domain"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	invoices []xerodomain.Invoice
	err      error
}

func (s *stubClient) GetInvoices() ([]xerodomain.Invoice, error) {
	return s.invoices, s.err
}

func TestListInvoices(t *testing.T) {
	tests := []struct {
		name     string
		invoices []xerodomain.Invoice
		validate func(t *testing.T, invoices []domain.Invoice, err error)
	}{
		{
			name: "invoices map with coerced dates",
			invoices: []xerodomain.Invoice{
				{
					InvoiceNumber: "INV-001",
					Contact:       &xerodomain.Contact{Name: "Acme Corp"},
					Status:        domain.InvoiceStatusPaid,
					DateString:    "2024-02-10T00:00:00",
					DueDateString: "2024-03-11T00:00:00",
					Total:         1500,
					AmountPaid:    1500,
					AmountDue:     0,
				},
			},
			validate: func(t *testing.T, invoices []domain.Invoice, err error) {
				assert.NoError(t, err)
				assert.Len(t, invoices, 1)
				assert.Equal(t, "INV-001", invoices[0].InvoiceNumber)
				assert.Equal(t, "Acme Corp", invoices[0].Contact)
				assert.Equal(t, domain.InvoiceStatusPaid, invoices[0].Status)
				assert.NotNil(t, invoices[0].Date)
				assert.NotNil(t, invoices[0].DueDate)
				assert.Equal(t, 1500.0, invoices[0].Total)
			},
		},
		{
			name: "amount due is taken as given, never re-derived",
			invoices: []xerodomain.Invoice{
				{InvoiceNumber: "INV-002", Total: 100, AmountPaid: 30, AmountDue: 99},
			},
			validate: func(t *testing.T, invoices []domain.Invoice, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 99.0, invoices[0].AmountDue)
			},
		},
		{
			name: "unparseable dates keep the row with a nil date",
			invoices: []xerodomain.Invoice{
				{InvoiceNumber: "INV-003", DateString: "not a date", Total: 10},
			},
			validate: func(t *testing.T, invoices []domain.Invoice, err error) {
				assert.NoError(t, err)
				assert.Len(t, invoices, 1)
				assert.Nil(t, invoices[0].Date)
			},
		},
		{
			name: "missing contact falls back to Unknown",
			invoices: []xerodomain.Invoice{
				{InvoiceNumber: "INV-004"},
			},
			validate: func(t *testing.T, invoices []domain.Invoice, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.UnknownTeam, invoices[0].Contact)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := New(&config.Config{}, &stubClient{invoices: tt.invoices})
			invoices, err := service.ListInvoices()
			tt.validate(t, invoices, err)
		})
	}
}

func TestListInvoicesClientError(t *testing.T) {
	service := New(&config.Config{}, &stubClient{err: errors.New("boom")})

	invoices, err := service.ListInvoices()
	assert.Error(t, err)
	assert.Nil(t, invoices)
}
