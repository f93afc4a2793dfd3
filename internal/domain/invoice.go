package domain

import "time"

// Invoice statuses as reported by Xero.
const (
	InvoiceStatusPaid       = "PAID"
	InvoiceStatusAuthorised = "AUTHORISED"
	InvoiceStatusSubmitted  = "SUBMITTED"
)

// Invoice is one row from Xero. AmountDue is taken as given from the source
// and never re-derived here. Date is nil when the source date did not parse;
// such rows are still counted, bucketed under the sentinel period.
type Invoice struct {
	InvoiceNumber string     `json:"invoice_number"`
	Contact       string     `json:"contact"`
	Status        string     `json:"status"`
	Date          *time.Time `json:"date"`
	DueDate       *time.Time `json:"due_date"`
	Total         float64    `json:"total"`
	AmountPaid    float64    `json:"amount_paid"`
	AmountDue     float64    `json:"amount_due"`
}
