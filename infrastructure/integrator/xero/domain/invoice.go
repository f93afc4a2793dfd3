package domain

// Contact is the counterparty attached to an invoice.
type Contact struct {
	Name string `json:"Name"`
}

// Invoice is one invoice as returned by the Xero accounting API. DateString
// fields are kept raw; parsing is best-effort downstream.
type Invoice struct {
	InvoiceNumber string   `json:"InvoiceNumber"`
	Contact       *Contact `json:"Contact"`
	Status        string   `json:"Status"`
	DateString    string   `json:"DateString"`
	DueDateString string   `json:"DueDateString"`
	Total         float64  `json:"Total"`
	AmountPaid    float64  `json:"AmountPaid"`
	AmountDue     float64  `json:"AmountDue"`
}

// InvoicesResponse is the envelope of the Invoices endpoint.
type InvoicesResponse struct {
	Invoices []Invoice `json:"Invoices"`
}
