package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
	"quotecraft/internal/shared/utils"
)

// WebhookHandler receives CRM event pushes. The raw body is handed to the
// use case untouched so it can be logged verbatim before parsing.
type WebhookHandler struct {
	processWebhookUC processWebhookUseCase
	logger           logger.Interface
}

func NewWebhookHandler(processWebhookUC processWebhookUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		processWebhookUC: processWebhookUC,
		logger:           logger,
	}
}

func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read request body"))
		return
	}

	result, err := h.processWebhookUC.Execute(c.Request.Context(), payload)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Webhook processed", result)
}
