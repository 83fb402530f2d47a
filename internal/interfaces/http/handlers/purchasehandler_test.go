package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	purchasedto "quotecraft/internal/application/purchase/dto"
	"quotecraft/internal/application/purchase/usecases"
	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/interfaces/http/handlers/testutil"
	"quotecraft/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreatePurchaseUC struct {
	result *usecases.CreatePurchaseResult
	err    error
	gotCmd usecases.CreatePurchaseCommand
}

func (m *mockCreatePurchaseUC) Execute(ctx context.Context, cmd usecases.CreatePurchaseCommand) (*usecases.CreatePurchaseResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetPurchaseUC struct {
	result *purchasedto.PurchaseDetailDTO
	err    error
}

func (m *mockGetPurchaseUC) Execute(ctx context.Context, purchaseID uint) (*purchasedto.PurchaseDetailDTO, error) {
	return m.result, m.err
}

type mockFinalizePurchaseUC struct {
	result *usecases.FinalizePurchaseResult
	err    error
	gotCmd usecases.FinalizePurchaseCommand
}

func (m *mockFinalizePurchaseUC) Execute(ctx context.Context, cmd usecases.FinalizePurchaseCommand) (*usecases.FinalizePurchaseResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeletePurchasedServiceUC struct {
	result *purchasedto.PurchaseDetailDTO
	err    error
	gotID  uint
}

func (m *mockDeletePurchasedServiceUC) Execute(ctx context.Context, purchasedServiceID uint) (*purchasedto.PurchaseDetailDTO, error) {
	m.gotID = purchasedServiceID
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestPurchaseDTO(t *testing.T) *purchasedto.PurchaseDTO {
	t.Helper()
	p, err := purchase.NewPurchase("contact-abc", nil, decimal.NewFromInt(120))
	require.NoError(t, err)
	require.NoError(t, p.SetID(1))
	return purchasedto.ToPurchaseDTO(p)
}

func newTestPurchaseHandler(
	createUC createPurchaseUseCase,
	getUC getPurchaseUseCase,
	finalizeUC finalizePurchaseUseCase,
	deleteUC deletePurchasedServiceUseCase,
) *PurchaseHandler {
	return NewPurchaseHandler(createUC, getUC, finalizeUC, deleteUC, testutil.NewMockLogger())
}

// =====================================================================
// CreatePurchase
// =====================================================================

func TestPurchaseHandler_CreatePurchase_Success(t *testing.T) {
	mockUC := &mockCreatePurchaseUC{
		result: &usecases.CreatePurchaseResult{Purchase: createTestPurchaseDTO(t)},
	}
	handler := newTestPurchaseHandler(mockUC, nil, nil, nil)

	reqBody := CreatePurchaseRequest{
		ContactID:   "contact-abc",
		TotalAmount: decimal.NewFromInt(120),
		Services: []ServiceSelectionRequest{
			{
				ServiceID:       3,
				PricingOptionID: 7,
				Answers: []AnswerRequest{
					{QuestionID: 10, BoolAnswer: true},
				},
			},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases", reqBody)

	handler.CreatePurchase(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "contact-abc", mockUC.gotCmd.ContactID)
	require.Len(t, mockUC.gotCmd.Services, 1)
	assert.Equal(t, uint(7), mockUC.gotCmd.Services[0].PricingOptionID)
	require.Len(t, mockUC.gotCmd.Services[0].Answers, 1)
	assert.True(t, mockUC.gotCmd.Services[0].Answers[0].BoolAnswer)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Warning)
}

func TestPurchaseHandler_CreatePurchase_SurfacesWarning(t *testing.T) {
	mockUC := &mockCreatePurchaseUC{
		result: &usecases.CreatePurchaseResult{
			Purchase: createTestPurchaseDTO(t),
			Warning:  "purchase created but the CRM review link could not be updated",
		},
	}
	handler := newTestPurchaseHandler(mockUC, nil, nil, nil)

	reqBody := CreatePurchaseRequest{ContactID: "contact-abc"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases", reqBody)

	handler.CreatePurchase(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Warning, "review link")
}

func TestPurchaseHandler_CreatePurchase_MissingContact(t *testing.T) {
	handler := newTestPurchaseHandler(&mockCreatePurchaseUC{}, nil, nil, nil)

	reqBody := map[string]interface{}{"total_amount": "120"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases", reqBody)

	handler.CreatePurchase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPurchaseHandler_CreatePurchase_UnknownContact(t *testing.T) {
	mockUC := &mockCreatePurchaseUC{err: errors.NewNotFoundError("contact not found")}
	handler := newTestPurchaseHandler(mockUC, nil, nil, nil)

	reqBody := CreatePurchaseRequest{ContactID: "ghost"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases", reqBody)

	handler.CreatePurchase(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// GetPurchase
// =====================================================================

func TestPurchaseHandler_GetPurchase_Success(t *testing.T) {
	mockUC := &mockGetPurchaseUC{
		result: &purchasedto.PurchaseDetailDTO{PurchaseDTO: *createTestPurchaseDTO(t)},
	}
	handler := newTestPurchaseHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/purchases/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetPurchase(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPurchaseHandler_GetPurchase_InvalidID(t *testing.T) {
	handler := newTestPurchaseHandler(nil, &mockGetPurchaseUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/purchases/x", nil)
	testutil.SetURLParam(c, "id", "x")

	handler.GetPurchase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// FinalizePurchase
// =====================================================================

func TestPurchaseHandler_FinalizePurchase_Success(t *testing.T) {
	mockUC := &mockFinalizePurchaseUC{
		result: &usecases.FinalizePurchaseResult{Purchase: createTestPurchaseDTO(t)},
	}
	handler := newTestPurchaseHandler(nil, nil, mockUC, nil)

	reqBody := FinalizePurchaseRequest{
		Signature:   "Jane Doe",
		TotalAmount: decimal.NewFromFloat(95.50),
		Selections: []PlanSelectionRequest{
			{PurchasedServiceID: 7, PlanSnapshotID: 2},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases/1/finalize", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.FinalizePurchase(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.gotCmd.PurchaseID)
	assert.Equal(t, "Jane Doe", mockUC.gotCmd.Signature)
	require.Len(t, mockUC.gotCmd.Selections, 1)
	assert.Equal(t, uint(2), mockUC.gotCmd.Selections[0].PlanSnapshotID)
}

func TestPurchaseHandler_FinalizePurchase_MissingSignature(t *testing.T) {
	handler := newTestPurchaseHandler(nil, nil, &mockFinalizePurchaseUC{}, nil)

	reqBody := map[string]interface{}{"total_amount": "95.50"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases/1/finalize", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.FinalizePurchase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPurchaseHandler_FinalizePurchase_AlreadySubmitted(t *testing.T) {
	mockUC := &mockFinalizePurchaseUC{err: errors.NewConflictError("purchase already submitted")}
	handler := newTestPurchaseHandler(nil, nil, mockUC, nil)

	reqBody := FinalizePurchaseRequest{Signature: "Jane Doe"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases/1/finalize", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.FinalizePurchase(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPurchaseHandler_FinalizePurchase_SurfacesCRMWarning(t *testing.T) {
	mockUC := &mockFinalizePurchaseUC{
		result: &usecases.FinalizePurchaseResult{
			Purchase: createTestPurchaseDTO(t),
			Warning:  "purchase submitted but CRM tagging failed",
		},
	}
	handler := newTestPurchaseHandler(nil, nil, mockUC, nil)

	reqBody := FinalizePurchaseRequest{Signature: "Jane Doe"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/purchases/1/finalize", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.FinalizePurchase(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Warning)
}

// =====================================================================
// DeletePurchasedService
// =====================================================================

func TestPurchaseHandler_DeletePurchasedService_Success(t *testing.T) {
	mockUC := &mockDeletePurchasedServiceUC{
		result: &purchasedto.PurchaseDetailDTO{PurchaseDTO: *createTestPurchaseDTO(t)},
	}
	handler := newTestPurchaseHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/purchased-services/7", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.DeletePurchasedService(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotID)
}

func TestPurchaseHandler_DeletePurchasedService_NotFound(t *testing.T) {
	mockUC := &mockDeletePurchasedServiceUC{err: errors.NewNotFoundError("purchased service not found")}
	handler := newTestPurchaseHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/purchased-services/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.DeletePurchasedService(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
