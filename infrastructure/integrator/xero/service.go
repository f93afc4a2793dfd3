package xero

import (
	xerodomain "github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/domain"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/integrator/xero/xeroclient"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/agencydash/analytics-dashboard-api/pkg/utils"
)

type XeroIntegrator interface {
	ListInvoices() ([]domain.Invoice, error)
}

type XeroService struct {
	cfg    *config.Config
	Client xeroclient.Client
}

func New(cfg *config.Config, client xeroclient.Client) XeroIntegrator {
	return &XeroService{
		cfg:    cfg,
		Client: client,
	}
}

// ListInvoices pulls every invoice and maps it to an Invoice row. Dates are
// coerced best-effort; a row with an unparseable date keeps a nil Date and
// is bucketed downstream rather than dropped. AmountDue is taken as given.
func (s *XeroService) ListInvoices() ([]domain.Invoice, error) {
	resp, err := s.Client.GetInvoices()
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(resp))
	for _, inv := range resp {
		invoices = append(invoices, domain.Invoice{
			InvoiceNumber: inv.InvoiceNumber,
			Contact:       contactName(inv.Contact),
			Status:        inv.Status,
			Date:          utils.CoerceDate(inv.DateString),
			DueDate:       utils.CoerceDate(inv.DueDateString),
			Total:         inv.Total,
			AmountPaid:    inv.AmountPaid,
			AmountDue:     inv.AmountDue,
		})
	}

	return invoices, nil
}

func contactName(contact *xerodomain.Contact) string {
	if contact == nil || contact.Name == "" {
		return domain.UnknownTeam
	}
	return contact.Name
}
