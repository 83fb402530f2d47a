package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"quotecraft/internal/application/settings/usecases"
	"quotecraft/internal/domain/settings"
	"quotecraft/internal/shared/logger"
	"quotecraft/internal/shared/utils"
)

type getSettingsUseCase interface {
	Execute(ctx context.Context) (*settings.GlobalSettings, error)
}

type updateSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*settings.GlobalSettings, error)
}

// SettingsHandler exposes the global settings endpoints.
type SettingsHandler struct {
	getSettingsUC    getSettingsUseCase
	updateSettingsUC updateSettingsUseCase
	logger           logger.Interface
}

func NewSettingsHandler(
	getSettingsUC getSettingsUseCase,
	updateSettingsUC updateSettingsUseCase,
	logger logger.Interface,
) *SettingsHandler {
	return &SettingsHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

type UpdateSettingsRequest struct {
	MinimumPrice decimal.Decimal `json:"minimum_price"`
}

// SettingsResponse is the wire shape of the settings singleton.
type SettingsResponse struct {
	MinimumPrice decimal.Decimal `json:"minimum_price"`
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", SettingsResponse{MinimumPrice: result.MinimumPrice})
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateSettingsCommand{
		MinimumPrice: req.MinimumPrice,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", SettingsResponse{MinimumPrice: result.MinimumPrice})
}
