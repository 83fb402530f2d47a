package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quotecraft/internal/application/contact/usecases"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
	"quotecraft/internal/shared/utils"
)

// ContactHandler exposes the synced contact read endpoints.
type ContactHandler struct {
	searchContactsUC   searchContactsUseCase
	validateLocationUC validateLocationUseCase
	logger             logger.Interface
}

func NewContactHandler(
	searchContactsUC searchContactsUseCase,
	validateLocationUC validateLocationUseCase,
	logger logger.Interface,
) *ContactHandler {
	return &ContactHandler{
		searchContactsUC:   searchContactsUC,
		validateLocationUC: validateLocationUC,
		logger:             logger,
	}
}

func (h *ContactHandler) SearchContacts(c *gin.Context) {
	query := usecases.SearchContactsQuery{
		Search: c.Query("search"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "0")); err == nil {
		query.PageSize = pageSize
	}

	result, err := h.searchContactsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Contacts, result.Total, result.Page, result.PageSize)
}

// ValidateLocation confirms the caller's CRM location matches the stored
// OAuth install before the embedded frontend boots.
func (h *ContactHandler) ValidateLocation(c *gin.Context) {
	locationID := c.Query("location_id")
	if locationID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("location_id is required"))
		return
	}

	if err := h.validateLocationUC.Execute(c.Request.Context(), locationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location validated", gin.H{"location_id": locationID})
}
