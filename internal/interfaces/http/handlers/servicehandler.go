package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogdto "quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/application/catalog/usecases"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
	"quotecraft/internal/shared/utils"
)

// ServiceHandler exposes the catalog editing endpoints.
type ServiceHandler struct {
	createServicesUC   createServicesUseCase
	updateServiceUC    updateServiceUseCase
	deleteServiceUC    deleteServiceUseCase
	getServiceUC       getServiceUseCase
	listServicesUC     listServicesUseCase
	toggleActiveUC     toggleActiveUseCase
	duplicateServiceUC duplicateServiceUseCase
	logger             logger.Interface
}

func NewServiceHandler(
	createServicesUC createServicesUseCase,
	updateServiceUC updateServiceUseCase,
	deleteServiceUC deleteServiceUseCase,
	getServiceUC getServiceUseCase,
	listServicesUC listServicesUseCase,
	toggleActiveUC toggleActiveUseCase,
	duplicateServiceUC duplicateServiceUseCase,
	logger logger.Interface,
) *ServiceHandler {
	return &ServiceHandler{
		createServicesUC:   createServicesUC,
		updateServiceUC:    updateServiceUC,
		deleteServiceUC:    deleteServiceUC,
		getServiceUC:       getServiceUC,
		listServicesUC:     listServicesUC,
		toggleActiveUC:     toggleActiveUC,
		duplicateServiceUC: duplicateServiceUC,
		logger:             logger,
	}
}

// CreateServicesRequest carries one editor save: a batch of services plus the
// optional pricing floor written alongside them.
type CreateServicesRequest struct {
	Services     []catalogdto.ServiceInput `json:"services" binding:"required,min=1,dive"`
	MinimumPrice *decimal.Decimal          `json:"minimum_price"`
}

func (h *ServiceHandler) CreateServices(c *gin.Context) {
	var req CreateServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create services", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateServicesCommand{
		Services:     req.Services,
		MinimumPrice: req.MinimumPrice,
	}

	result, err := h.createServicesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Services created successfully")
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req catalogdto.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update service",
			"service_id", serviceID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateServiceCommand{
		ServiceID: serviceID,
		Input:     req,
	}

	result, err := h.updateServiceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", result)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteServiceUC.Execute(c.Request.Context(), serviceID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service deleted successfully", nil)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getServiceUC.Execute(c.Request.Context(), serviceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	result, err := h.listServicesUC.Execute(c.Request.Context(), usecases.ListServicesQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListActiveServices returns only services currently offered, the set the
// quote frontend renders.
func (h *ServiceHandler) ListActiveServices(c *gin.Context) {
	result, err := h.listServicesUC.Execute(c.Request.Context(), usecases.ListServicesQuery{ActiveOnly: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ServiceHandler) ToggleActive(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleActiveUC.Execute(c.Request.Context(), serviceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service status updated", result)
}

func (h *ServiceHandler) DuplicateService(c *gin.Context) {
	serviceID, err := parseServiceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.duplicateServiceUC.Execute(c.Request.Context(), serviceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service duplicated successfully")
}

func parseServiceID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid service id")
	}
	return uint(id), nil
}
