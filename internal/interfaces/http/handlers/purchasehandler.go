package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"quotecraft/internal/application/purchase/usecases"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
	"quotecraft/internal/shared/utils"
)

// PurchaseHandler exposes the quote lifecycle endpoints.
type PurchaseHandler struct {
	createPurchaseUC         createPurchaseUseCase
	getPurchaseUC            getPurchaseUseCase
	finalizePurchaseUC       finalizePurchaseUseCase
	deletePurchasedServiceUC deletePurchasedServiceUseCase
	logger                   logger.Interface
}

func NewPurchaseHandler(
	createPurchaseUC createPurchaseUseCase,
	getPurchaseUC getPurchaseUseCase,
	finalizePurchaseUC finalizePurchaseUseCase,
	deletePurchasedServiceUC deletePurchasedServiceUseCase,
	logger logger.Interface,
) *PurchaseHandler {
	return &PurchaseHandler{
		createPurchaseUC:         createPurchaseUC,
		getPurchaseUC:            getPurchaseUC,
		finalizePurchaseUC:       finalizePurchaseUC,
		deletePurchasedServiceUC: deletePurchasedServiceUC,
		logger:                   logger,
	}
}

type AnswerRequest struct {
	QuestionID uint              `json:"question_id" binding:"required"`
	BoolAnswer bool              `json:"bool_answer"`
	Options    map[string]string `json:"options"`
}

type ServiceSelectionRequest struct {
	ServiceID       uint            `json:"service_id" binding:"required"`
	PricingOptionID uint            `json:"pricing_option_id" binding:"required"`
	Answers         []AnswerRequest `json:"answers" binding:"dive"`
}

type CustomProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type CreatePurchaseRequest struct {
	ContactID      string                    `json:"contact_id" binding:"required"`
	AddressID      *uint                     `json:"address_id"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	Services       []ServiceSelectionRequest `json:"services" binding:"dive"`
	CustomProducts []CustomProductRequest    `json:"custom_products" binding:"dive"`
}

type PlanSelectionRequest struct {
	PurchasedServiceID uint `json:"purchased_service_id" binding:"required"`
	PlanSnapshotID     uint `json:"plan_snapshot_id" binding:"required"`
}

type FinalizePurchaseRequest struct {
	Signature   string                 `json:"signature" binding:"required"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Selections  []PlanSelectionRequest `json:"selections" binding:"dive"`
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create purchase", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreatePurchaseCommand{
		ContactID:   req.ContactID,
		AddressID:   req.AddressID,
		TotalAmount: req.TotalAmount,
	}
	for _, s := range req.Services {
		sel := usecases.ServiceSelectionInput{
			ServiceID:       s.ServiceID,
			PricingOptionID: s.PricingOptionID,
		}
		for _, a := range s.Answers {
			sel.Answers = append(sel.Answers, usecases.AnswerInput{
				QuestionID: a.QuestionID,
				BoolAnswer: a.BoolAnswer,
				Options:    a.Options,
			})
		}
		cmd.Services = append(cmd.Services, sel)
	}
	for _, p := range req.CustomProducts {
		cmd.CustomProducts = append(cmd.CustomProducts, usecases.CustomProductInput{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}

	result, err := h.createPurchaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Warning != "" {
		utils.SuccessResponseWithWarning(c, http.StatusCreated, "Purchase created successfully", result.Warning, result.Purchase)
		return
	}
	utils.CreatedResponse(c, result.Purchase, "Purchase created successfully")
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	purchaseID, err := parsePurchaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPurchaseUC.Execute(c.Request.Context(), purchaseID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PurchaseHandler) FinalizePurchase(c *gin.Context) {
	purchaseID, err := parsePurchaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req FinalizePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for finalize purchase",
			"purchase_id", purchaseID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.FinalizePurchaseCommand{
		PurchaseID:  purchaseID,
		Signature:   req.Signature,
		TotalAmount: req.TotalAmount,
	}
	for _, s := range req.Selections {
		cmd.Selections = append(cmd.Selections, usecases.PlanSelectionInput{
			PurchasedServiceID: s.PurchasedServiceID,
			PlanSnapshotID:     s.PlanSnapshotID,
		})
	}

	result, err := h.finalizePurchaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Warning != "" {
		utils.SuccessResponseWithWarning(c, http.StatusOK, "Purchase submitted successfully", result.Warning, result.Purchase)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Purchase submitted successfully", result.Purchase)
}

func (h *PurchaseHandler) DeletePurchasedService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid purchased service id"))
		return
	}

	result, err := h.deletePurchasedServiceUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service removed from purchase", result)
}

func parsePurchaseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid purchase id")
	}
	return uint(id), nil
}
