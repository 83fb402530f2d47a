package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotecraft/internal/domain/contact"
	"quotecraft/internal/domain/crmauth"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockWebhookLogStore struct {
	err       error
	eventType string
	payload   []byte
}

func (m *mockWebhookLogStore) Record(ctx context.Context, eventType string, payload []byte) error {
	m.eventType = eventType
	m.payload = payload
	return m.err
}

type mockContactRepo struct {
	upserted  *contact.Contact
	deletedID string
	upsertErr error
}

func (m *mockContactRepo) Upsert(ctx context.Context, c *contact.Contact) error {
	m.upserted = c
	return m.upsertErr
}

func (m *mockContactRepo) GetByContactID(ctx context.Context, contactID string) (*contact.Contact, error) {
	return nil, errors.NewNotFoundError("contact not found")
}

func (m *mockContactRepo) DeleteByContactID(ctx context.Context, contactID string) error {
	m.deletedID = contactID
	return nil
}

func (m *mockContactRepo) Search(ctx context.Context, q contact.SearchQuery) ([]*contact.Contact, int64, error) {
	return nil, 0, nil
}

func (m *mockContactRepo) ReplaceAddresses(ctx context.Context, contactID string, addresses []contact.Address) error {
	return nil
}

type mockInvoiceIssuer struct {
	productID    string
	productErr   error
	invoiceID    string
	invoiceErr   error
	gotLocation  string
	gotProduct   string
	gotPrice     decimal.Decimal
	gotInvoice   InvoiceRequest
	invoiceCalls int
}

func (m *mockInvoiceIssuer) GetOrCreateProduct(ctx context.Context, locationID, name string, price decimal.Decimal) (string, error) {
	m.gotLocation = locationID
	m.gotProduct = name
	m.gotPrice = price
	return m.productID, m.productErr
}

func (m *mockInvoiceIssuer) CreateInvoice(ctx context.Context, req InvoiceRequest) (string, error) {
	m.gotInvoice = req
	m.invoiceCalls++
	return m.invoiceID, m.invoiceErr
}

type mockCredRepo struct {
	cred *crmauth.Credential
	err  error
}

func (m *mockCredRepo) Upsert(ctx context.Context, c *crmauth.Credential) error { return nil }

func (m *mockCredRepo) GetByLocationID(ctx context.Context, locationID string) (*crmauth.Credential, error) {
	return m.cred, m.err
}

func (m *mockCredRepo) GetLatest(ctx context.Context) (*crmauth.Credential, error) {
	return m.cred, m.err
}

func newWebhookFixture() (*ProcessWebhookUseCase, *mockWebhookLogStore, *mockContactRepo, *mockInvoiceIssuer, *mockCredRepo) {
	log := newTestLogger()
	logStore := &mockWebhookLogStore{}
	contactRepo := &mockContactRepo{}
	issuer := &mockInvoiceIssuer{productID: "prod-1", invoiceID: "inv-1"}
	credRepo := &mockCredRepo{
		cred: &crmauth.Credential{AccessToken: "tok", LocationID: "loc-123", ExpiresAt: time.Now().Add(time.Hour)},
	}
	uc := NewProcessWebhookUseCase(
		logStore,
		NewSyncContactUseCase(contactRepo, log),
		NewDeleteContactUseCase(contactRepo, log),
		issuer,
		credRepo,
		log,
	)
	return uc, logStore, contactRepo, issuer, credRepo
}

func TestProcessWebhookUseCase_ContactCreate(t *testing.T) {
	uc, logStore, contactRepo, _, _ := newWebhookFixture()

	payload := []byte(`{
		"type": "ContactCreate",
		"id": "contact-abc",
		"firstName": "Jane",
		"lastName": "Doe",
		"email": "jane@example.com",
		"dateAdded": "2026-08-01T12:00:00Z",
		"tags": ["lead"],
		"locationId": "loc-123"
	}`)

	result, err := uc.Execute(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "ContactCreate", result.EventType)
	assert.Empty(t, result.InvoiceID)

	assert.Equal(t, "ContactCreate", logStore.eventType)
	assert.Equal(t, payload, logStore.payload)

	require.NotNil(t, contactRepo.upserted)
	assert.Equal(t, "contact-abc", contactRepo.upserted.ContactID)
	assert.Equal(t, "Jane Doe", contactRepo.upserted.FullName())
	require.NotNil(t, contactRepo.upserted.DateAdded)
	assert.Equal(t, 2026, contactRepo.upserted.DateAdded.Year())
}

func TestProcessWebhookUseCase_ContactDelete(t *testing.T) {
	uc, _, contactRepo, _, _ := newWebhookFixture()

	result, err := uc.Execute(context.Background(), []byte(`{"type":"ContactDelete","id":"contact-abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "ContactDelete", result.EventType)
	assert.Equal(t, "contact-abc", contactRepo.deletedID)
}

func TestProcessWebhookUseCase_UnknownEventIsAcknowledged(t *testing.T) {
	uc, logStore, contactRepo, issuer, _ := newWebhookFixture()

	result, err := uc.Execute(context.Background(), []byte(`{"type":"OpportunityCreate","id":"op-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "OpportunityCreate", result.EventType)

	assert.Equal(t, "OpportunityCreate", logStore.eventType)
	assert.Nil(t, contactRepo.upserted)
	assert.Zero(t, issuer.invoiceCalls)
}

func TestProcessWebhookUseCase_InvalidPayload(t *testing.T) {
	uc, logStore, _, _, _ := newWebhookFixture()

	result, err := uc.Execute(context.Background(), []byte(`not-json`))
	assert.Nil(t, result)
	assert.True(t, errors.IsAppError(err))
	assert.Nil(t, logStore.payload)
}

func TestProcessWebhookUseCase_LogFailureDoesNotDropEvent(t *testing.T) {
	uc, logStore, contactRepo, _, _ := newWebhookFixture()
	logStore.err = assert.AnError

	_, err := uc.Execute(context.Background(), []byte(`{"type":"ContactCreate","id":"contact-abc"}`))
	require.NoError(t, err)
	assert.NotNil(t, contactRepo.upserted)
}

func TestProcessWebhookUseCase_InvoiceEvent(t *testing.T) {
	uc, _, _, issuer, _ := newWebhookFixture()

	payload := []byte(`{
		"type": "WorkflowTrigger",
		"contact_id": "contact-abc",
		"full_name": "Jane Doe",
		"email": "jane@example.com",
		"address1": "1 Main St",
		"city": "Austin",
		"state": "TX",
		"company_name": "Acme Cleaning",
		"location": {"id": "loc-123", "name": "Acme HQ"},
		"customData": {"Product Name": "Window Cleaning", "Price": "149.99"}
	}`)

	result, err := uc.Execute(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", result.InvoiceID)

	assert.Equal(t, "loc-123", issuer.gotLocation)
	assert.Equal(t, "Window Cleaning", issuer.gotProduct)
	assert.True(t, issuer.gotPrice.Equal(decimal.NewFromFloat(149.99)))

	assert.Equal(t, "prod-1", issuer.gotInvoice.ProductID)
	assert.Equal(t, "contact-abc", issuer.gotInvoice.ContactID)
	assert.Equal(t, "Acme Cleaning", issuer.gotInvoice.BusinessName)
}

func TestProcessWebhookUseCase_InvoiceEventFallsBackToQuoteValue(t *testing.T) {
	uc, _, _, issuer, _ := newWebhookFixture()

	payload := []byte(`{
		"type": "WorkflowTrigger",
		"contact_id": "contact-abc",
		"locationId": "loc-123",
		"Quote Value": "200",
		"customData": {"Product Name": "Gutter Cleaning"}
	}`)

	_, err := uc.Execute(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, issuer.gotPrice.Equal(decimal.NewFromInt(200)))
}

func TestProcessWebhookUseCase_InvoiceEventWithoutLocation(t *testing.T) {
	uc, _, _, issuer, _ := newWebhookFixture()

	payload := []byte(`{"type":"WorkflowTrigger","customData":{"Product Name":"Window Cleaning"}}`)

	result, err := uc.Execute(context.Background(), payload)
	assert.Nil(t, result)
	assert.True(t, errors.IsAppError(err))
	assert.Zero(t, issuer.invoiceCalls)
}

func TestProcessWebhookUseCase_InvoiceEventUnknownLocation(t *testing.T) {
	uc, _, _, issuer, credRepo := newWebhookFixture()
	credRepo.cred = nil
	credRepo.err = errors.NewNotFoundError("credential not found")

	payload := []byte(`{
		"type": "WorkflowTrigger",
		"locationId": "loc-unknown",
		"customData": {"Product Name": "Window Cleaning"}
	}`)

	result, err := uc.Execute(context.Background(), payload)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Zero(t, issuer.invoiceCalls)
}
