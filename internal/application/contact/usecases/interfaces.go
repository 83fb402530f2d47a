package usecases

import (
	"context"

	"github.com/shopspring/decimal"
)

// WebhookLogStore records every inbound CRM payload before any processing,
// so failed events can be replayed from storage.
type WebhookLogStore interface {
	Record(ctx context.Context, eventType string, payload []byte) error
}

// InvoiceIssuer is the CRM invoice path: resolve a product by name (creating
// it when missing) and raise an invoice against a contact.
type InvoiceIssuer interface {
	GetOrCreateProduct(ctx context.Context, locationID, name string, price decimal.Decimal) (productID string, err error)
	CreateInvoice(ctx context.Context, req InvoiceRequest) (invoiceID string, err error)
}

// InvoiceRequest carries the contact and line-item details for one invoice.
type InvoiceRequest struct {
	LocationID   string
	ProductID    string
	ProductName  string
	ContactID    string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address1     string
	City         string
	State        string
	Country      string
	BusinessName string
	Amount       decimal.Decimal
}
