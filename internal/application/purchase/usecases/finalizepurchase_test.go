package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockPurchaseRepo struct {
	purchase *purchase.Purchase
	getErr   error

	markErr        error
	markedID       uint
	markedSig      string
	selectErr      error
	selectedPlans  map[uint]uint
	deletedService uint
	deleteErr      error
}

func (m *mockPurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) error { return nil }

func (m *mockPurchaseRepo) GetByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.purchase, nil
}

func (m *mockPurchaseRepo) GetByPurchasedServiceID(ctx context.Context, purchasedServiceID uint) (*purchase.Purchase, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.purchase, nil
}

func (m *mockPurchaseRepo) MarkSubmitted(ctx context.Context, id uint, signature string, totalAmount decimal.Decimal) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.markedID = id
	m.markedSig = signature
	return nil
}

func (m *mockPurchaseRepo) SetSelectedPlan(ctx context.Context, purchasedServiceID, planSnapshotID uint) error {
	if m.selectErr != nil {
		return m.selectErr
	}
	if m.selectedPlans == nil {
		m.selectedPlans = map[uint]uint{}
	}
	m.selectedPlans[purchasedServiceID] = planSnapshotID
	return nil
}

func (m *mockPurchaseRepo) DeletePurchasedService(ctx context.Context, purchasedServiceID uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedService = purchasedServiceID
	return nil
}

type mockCRMGateway struct {
	tagErr    error
	fieldErr  error
	gotTags   []string
	gotFields []CustomFieldUpdate
	tagTarget string
}

func (m *mockCRMGateway) AddTags(ctx context.Context, contactID string, tags ...string) error {
	if m.tagErr != nil {
		return m.tagErr
	}
	m.tagTarget = contactID
	m.gotTags = append(m.gotTags, tags...)
	return nil
}

func (m *mockCRMGateway) UpdateContactFields(ctx context.Context, contactID string, fields []CustomFieldUpdate) error {
	if m.fieldErr != nil {
		return m.fieldErr
	}
	m.gotFields = append(m.gotFields, fields...)
	return nil
}

// draftPurchase builds a purchase holding one service snapshot with two
// candidate plans, ready to finalize.
func draftPurchase(t *testing.T) *purchase.Purchase {
	t.Helper()

	p, err := purchase.NewPurchase("contact-abc", nil, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, p.SetID(1))

	ps := purchase.NewPurchasedService("Window Cleaning", "Exterior windows")
	ps.SetID(7)

	basic := purchase.NewPlanSnapshot("Basic", decimal.Zero)
	basic.SetID(2)
	ps.AddPlan(basic)

	premium := purchase.NewPlanSnapshot("Premium", decimal.NewFromInt(10))
	premium.SetID(3)
	ps.AddPlan(premium)

	p.AddService(ps)
	return p
}

func newFinalizeFixture(t *testing.T) (*FinalizePurchaseUseCase, *mockPurchaseRepo, *mockCRMGateway) {
	repo := &mockPurchaseRepo{purchase: draftPurchase(t)}
	crm := &mockCRMGateway{}
	uc := NewFinalizePurchaseUseCase(
		repo,
		newTestTxManager(t),
		crm,
		AcceptanceConfig{AcceptedTag: "quote accepted", QuoteTotalFieldID: "field-total"},
		newTestLogger(),
	)
	return uc, repo, crm
}

func TestFinalizePurchaseUseCase_Success(t *testing.T) {
	uc, repo, crm := newFinalizeFixture(t)

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
		Selections:  []PlanSelectionInput{{PurchasedServiceID: 7, PlanSnapshotID: 3}},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Warning)
	assert.True(t, result.Purchase.IsSubmitted)

	assert.Equal(t, uint(1), repo.markedID)
	assert.Equal(t, "Jane Doe", repo.markedSig)
	assert.Equal(t, uint(3), repo.selectedPlans[7])

	assert.Equal(t, "contact-abc", crm.tagTarget)
	assert.ElementsMatch(t, []string{"Premium", "quote accepted"}, crm.gotTags)
	require.Len(t, crm.gotFields, 1)
	assert.Equal(t, "field-total", crm.gotFields[0].ID)
}

func TestFinalizePurchaseUseCase_MissingSignature(t *testing.T) {
	uc, repo, _ := newFinalizeFixture(t)

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "   ",
		TotalAmount: decimal.NewFromInt(95),
	})
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, repo.markedID)
}

func TestFinalizePurchaseUseCase_AlreadySubmitted(t *testing.T) {
	uc, repo, _ := newFinalizeFixture(t)
	require.NoError(t, repo.purchase.Finalize("Earlier Signer", decimal.NewFromInt(95)))

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
	})
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestFinalizePurchaseUseCase_SelectionOutsidePurchase(t *testing.T) {
	uc, repo, _ := newFinalizeFixture(t)

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
		Selections:  []PlanSelectionInput{{PurchasedServiceID: 999, PlanSnapshotID: 3}},
	})
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Zero(t, repo.markedID)
}

func TestFinalizePurchaseUseCase_PlanOutsideService(t *testing.T) {
	uc, repo, _ := newFinalizeFixture(t)

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
		Selections:  []PlanSelectionInput{{PurchasedServiceID: 7, PlanSnapshotID: 999}},
	})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Zero(t, repo.markedID)
}

func TestFinalizePurchaseUseCase_SubmitRace(t *testing.T) {
	uc, repo, crm := newFinalizeFixture(t)
	repo.markErr = errors.NewConflictError("purchase already submitted")

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
	})
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, crm.gotTags)
}

func TestFinalizePurchaseUseCase_CRMTagFailureDegradesToWarning(t *testing.T) {
	uc, repo, crm := newFinalizeFixture(t)
	crm.tagErr = assert.AnError

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
		Selections:  []PlanSelectionInput{{PurchasedServiceID: 7, PlanSnapshotID: 2}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Warning)
	assert.Equal(t, uint(1), repo.markedID)
}

func TestFinalizePurchaseUseCase_CRMFieldFailureDegradesToWarning(t *testing.T) {
	uc, _, crm := newFinalizeFixture(t)
	crm.fieldErr = assert.AnError

	result, err := uc.Execute(context.Background(), FinalizePurchaseCommand{
		PurchaseID:  1,
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromInt(95),
	})
	require.NoError(t, err)
	assert.Contains(t, result.Warning, "quote total")
}
