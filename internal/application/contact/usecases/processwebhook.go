package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"quotecraft/internal/domain/crmauth"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

// webhookEvent is the loose shape CRM webhooks arrive in. Contact events and
// workflow events share one endpoint and overlap only partially, so every
// field is optional.
type webhookEvent struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	DND        bool              `json:"dnd"`
	Country    string            `json:"country"`
	DateAdded  string            `json:"dateAdded"`
	Tags       []string          `json:"tags"`
	LocationID string            `json:"locationId"`
	Location   *webhookLocation  `json:"location"`
	CustomData map[string]string `json:"customData"`

	// Workflow-event contact fields. Workflows flatten the contact into
	// the payload root under different names than contact events use.
	FullName    string `json:"full_name"`
	ContactID   string `json:"contact_id"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	State       string `json:"state"`
	CompanyName string `json:"company_name"`
	QuoteValue  string `json:"Quote Value"`
}

type webhookLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (e *webhookEvent) locationID() string {
	if e.LocationID != "" {
		return e.LocationID
	}
	if e.Location != nil {
		return e.Location.ID
	}
	return ""
}

// ProcessWebhookResult reports what the endpoint did with the event.
type ProcessWebhookResult struct {
	EventType string `json:"event_type"`
	InvoiceID string `json:"invoice_id,omitempty"`
}

type ProcessWebhookUseCase struct {
	logStore WebhookLogStore
	syncUC   *SyncContactUseCase
	deleteUC *DeleteContactUseCase
	invoices InvoiceIssuer
	credRepo crmauth.Repository
	logger   logger.Interface
}

func NewProcessWebhookUseCase(
	logStore WebhookLogStore,
	syncUC *SyncContactUseCase,
	deleteUC *DeleteContactUseCase,
	invoices InvoiceIssuer,
	credRepo crmauth.Repository,
	logger logger.Interface,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		logStore: logStore,
		syncUC:   syncUC,
		deleteUC: deleteUC,
		invoices: invoices,
		credRepo: credRepo,
		logger:   logger,
	}
}

// Execute records the raw payload, then routes it: workflow events carrying
// a product in customData raise a CRM invoice, contact events update the
// local mirror, anything else is acknowledged and dropped.
func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, payload []byte) (*ProcessWebhookResult, error) {
	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errors.NewBadRequestError("invalid webhook payload", err.Error())
	}

	if err := uc.logStore.Record(ctx, event.Type, payload); err != nil {
		// The log is for replay; losing one entry must not drop the event.
		uc.logger.Warnw("failed to record webhook payload", "error", err, "event_type", event.Type)
	}

	if productName := event.CustomData["Product Name"]; productName != "" {
		return uc.handleInvoiceEvent(ctx, &event, productName)
	}

	switch event.Type {
	case "ContactCreate", "ContactUpdate":
		if err := uc.syncUC.Execute(ctx, syncCommandFromEvent(&event)); err != nil {
			return nil, err
		}
	case "ContactDelete":
		if err := uc.deleteUC.Execute(ctx, event.ID); err != nil {
			return nil, err
		}
	default:
		uc.logger.Infow("ignoring webhook event", "event_type", event.Type)
	}

	return &ProcessWebhookResult{EventType: event.Type}, nil
}

func (uc *ProcessWebhookUseCase) handleInvoiceEvent(ctx context.Context, event *webhookEvent, productName string) (*ProcessWebhookResult, error) {
	locationID := event.locationID()
	if locationID == "" {
		return nil, errors.NewBadRequestError("location id not found in webhook payload")
	}
	if _, err := uc.credRepo.GetByLocationID(ctx, locationID); err != nil {
		uc.logger.Errorw("no credentials for webhook location", "error", err, "location_id", locationID)
		return nil, errors.NewBadRequestError("authentication credentials not found for location")
	}

	price := parseAmount(event.CustomData["Price"], event.QuoteValue)

	productID, err := uc.invoices.GetOrCreateProduct(ctx, locationID, productName, price)
	if err != nil {
		uc.logger.Errorw("failed to resolve product", "error", err, "product_name", productName)
		return nil, err
	}

	businessName := event.CompanyName
	if businessName == "" && event.Location != nil {
		businessName = event.Location.Name
	}

	invoiceID, err := uc.invoices.CreateInvoice(ctx, InvoiceRequest{
		LocationID:   locationID,
		ProductID:    productID,
		ProductName:  productName,
		ContactID:    event.ContactID,
		ContactName:  event.FullName,
		ContactEmail: event.Email,
		ContactPhone: event.Phone,
		Address1:     event.Address1,
		City:         event.City,
		State:        event.State,
		Country:      event.Country,
		BusinessName: businessName,
		Amount:       price,
	})
	if err != nil {
		uc.logger.Errorw("failed to create invoice", "error", err, "product_name", productName)
		return nil, err
	}

	uc.logger.Infow("invoice created from webhook", "invoice_id", invoiceID, "product_name", productName)
	return &ProcessWebhookResult{EventType: event.Type, InvoiceID: invoiceID}, nil
}

func syncCommandFromEvent(event *webhookEvent) SyncContactCommand {
	cmd := SyncContactCommand{
		ContactID:  event.ID,
		FirstName:  event.FirstName,
		LastName:   event.LastName,
		Email:      event.Email,
		Phone:      event.Phone,
		DND:        event.DND,
		Country:    event.Country,
		Tags:       event.Tags,
		LocationID: event.locationID(),
	}
	if event.DateAdded != "" {
		if t, err := time.Parse(time.RFC3339, event.DateAdded); err == nil {
			cmd.DateAdded = &t
		}
	}
	return cmd
}

// parseAmount reads the first parseable price, falling back to zero the way
// the CRM's own invoice editor treats a missing amount.
func parseAmount(candidates ...string) decimal.Decimal {
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		if d, err := decimal.NewFromString(raw); err == nil {
			return d
		}
	}
	return decimal.Zero
}
