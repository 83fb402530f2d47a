package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/domain/contact"
	"quotecraft/internal/shared/errors"
)

type mockServiceCatalog struct {
	services map[uint]*catalog.Service
}

func (m *mockServiceCatalog) Create(ctx context.Context, service *catalog.Service) error { return nil }
func (m *mockServiceCatalog) Update(ctx context.Context, service *catalog.Service) error { return nil }

func (m *mockServiceCatalog) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	if svc, ok := m.services[id]; ok {
		return svc, nil
	}
	return nil, errors.NewNotFoundError("service not found")
}

func (m *mockServiceCatalog) List(ctx context.Context) ([]*catalog.Service, error)       { return nil, nil }
func (m *mockServiceCatalog) ListActive(ctx context.Context) ([]*catalog.Service, error) { return nil, nil }
func (m *mockServiceCatalog) Delete(ctx context.Context, id uint) error                  { return nil }
func (m *mockServiceCatalog) UpdateActive(ctx context.Context, id uint, isActive bool) error {
	return nil
}

type mockContactDirectory struct {
	known map[string]bool
}

func (m *mockContactDirectory) Upsert(ctx context.Context, c *contact.Contact) error { return nil }

func (m *mockContactDirectory) GetByContactID(ctx context.Context, contactID string) (*contact.Contact, error) {
	if m.known[contactID] {
		return &contact.Contact{ContactID: contactID}, nil
	}
	return nil, errors.NewNotFoundError("contact not found")
}

func (m *mockContactDirectory) DeleteByContactID(ctx context.Context, contactID string) error {
	return nil
}

func (m *mockContactDirectory) Search(ctx context.Context, q contact.SearchQuery) ([]*contact.Contact, int64, error) {
	return nil, 0, nil
}

func (m *mockContactDirectory) ReplaceAddresses(ctx context.Context, contactID string, addresses []contact.Address) error {
	return nil
}

// catalogServiceFixture builds a persisted-looking catalog service with two
// plans and one boolean question.
func catalogServiceFixture(t *testing.T) *catalog.Service {
	t.Helper()

	svc, err := catalog.NewService("Window Cleaning", "Exterior windows")
	require.NoError(t, err)
	require.NoError(t, svc.SetID(3))

	f, err := svc.AddFeature("Screens", "Screen wipe down")
	require.NoError(t, err)
	f.SetID(11)

	basic, err := svc.AddPricingOption("Basic", decimal.Zero, decimal.NewFromInt(100), nil)
	require.NoError(t, err)
	basic.SetID(6)

	premium, err := svc.AddPricingOption("Premium", decimal.NewFromInt(10), decimal.NewFromInt(150), []catalog.FeatureInclusion{
		{FeatureName: "Screens", Included: true},
	})
	require.NoError(t, err)
	premium.SetID(7)

	q, err := svc.AddQuestion("Gutter cleaning?", catalog.QuestionTypeBoolean, decimal.NewFromInt(40), false, 1)
	require.NoError(t, err)
	q.SetID(10)

	return svc
}

func newCreateFixture(t *testing.T) (*CreatePurchaseUseCase, *mockPurchaseRepo, *mockCRMGateway) {
	purchaseRepo := &mockPurchaseRepo{}
	crm := &mockCRMGateway{}
	uc := NewCreatePurchaseUseCase(
		purchaseRepo,
		&mockServiceCatalog{services: map[uint]*catalog.Service{3: catalogServiceFixture(t)}},
		&mockContactDirectory{known: map[string]bool{"contact-abc": true}},
		newTestTxManager(t),
		crm,
		ReviewLinkConfig{FrontendURL: "https://quotes.example.com", FieldID: "field-review"},
		newTestLogger(),
	)
	return uc, purchaseRepo, crm
}

func TestCreatePurchaseUseCase_Success(t *testing.T) {
	uc, _, crm := newCreateFixture(t)

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{
		ContactID:   "contact-abc",
		TotalAmount: decimal.NewFromInt(135),
		Services: []ServiceSelectionInput{
			{
				ServiceID:       3,
				PricingOptionID: 7,
				Answers:         []AnswerInput{{QuestionID: 10, BoolAnswer: true}},
			},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Warning)

	p := result.Purchase
	assert.Equal(t, "contact-abc", p.ContactID)
	assert.False(t, p.IsSubmitted)
	require.Len(t, p.Services, 1)

	ps := p.Services[0]
	assert.Equal(t, "Window Cleaning", ps.ServiceName)
	assert.Len(t, ps.Plans, 2)
	require.NotNil(t, ps.SelectedPlan)
	assert.Equal(t, "Premium", ps.SelectedPlan.Name)
	require.Len(t, ps.Features, 1)
	assert.Equal(t, "Screens", ps.Features[0].Name)
	require.Len(t, ps.Answers, 1)

	require.Len(t, crm.gotFields, 1)
	assert.Equal(t, "field-review", crm.gotFields[0].ID)
	assert.Contains(t, crm.gotFields[0].Value, "https://quotes.example.com/user/review/")
}

func TestCreatePurchaseUseCase_CustomProductsOnly(t *testing.T) {
	uc, _, _ := newCreateFixture(t)

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{
		ContactID:   "contact-abc",
		TotalAmount: decimal.NewFromInt(50),
		CustomProducts: []CustomProductInput{
			{Name: "Chandelier dusting", Price: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Purchase.CustomProducts, 1)
	assert.Empty(t, result.Purchase.Services)
}

func TestCreatePurchaseUseCase_UnknownContact(t *testing.T) {
	uc, _, crm := newCreateFixture(t)

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{ContactID: "ghost"})
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, crm.gotFields)
}

func TestCreatePurchaseUseCase_UnknownService(t *testing.T) {
	uc, _, _ := newCreateFixture(t)

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{
		ContactID: "contact-abc",
		Services:  []ServiceSelectionInput{{ServiceID: 999, PricingOptionID: 7}},
	})
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreatePurchaseUseCase_PricingOptionOutsideService(t *testing.T) {
	uc, _, _ := newCreateFixture(t)

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{
		ContactID: "contact-abc",
		Services:  []ServiceSelectionInput{{ServiceID: 3, PricingOptionID: 999}},
	})
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreatePurchaseUseCase_EmptyPurchase(t *testing.T) {
	uc, _, _ := newCreateFixture(t)

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{ContactID: "contact-abc"})
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreatePurchaseUseCase_CRMFailureDegradesToWarning(t *testing.T) {
	uc, _, crm := newCreateFixture(t)
	crm.fieldErr = assert.AnError

	result, err := uc.Execute(context.Background(), CreatePurchaseCommand{
		ContactID:      "contact-abc",
		CustomProducts: []CustomProductInput{{Name: "Chandelier dusting", Price: decimal.NewFromInt(50)}},
	})
	require.NoError(t, err)
	assert.Contains(t, result.Warning, "review link")
}
