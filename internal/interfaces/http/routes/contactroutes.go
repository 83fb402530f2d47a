package routes

import (
	"github.com/gin-gonic/gin"

	"quotecraft/internal/interfaces/http/handlers"
)

// ContactRouteConfig holds dependencies for contact and webhook routes.
type ContactRouteConfig struct {
	ContactHandler *handlers.ContactHandler
	WebhookHandler *handlers.WebhookHandler
}

// SetupContactRoutes configures the contact search, location validation and
// CRM webhook routes.
func SetupContactRoutes(engine *gin.Engine, cfg *ContactRouteConfig) {
	engine.GET("/api/contacts/search", cfg.ContactHandler.SearchContacts)
	engine.GET("/api/locations/validate", cfg.ContactHandler.ValidateLocation)
	engine.POST("/api/webhooks/crm", cfg.WebhookHandler.HandleWebhook)
}
