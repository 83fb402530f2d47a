package routes

import (
	"github.com/gin-gonic/gin"

	"quotecraft/internal/interfaces/http/handlers"
)

// SettingsRouteConfig holds dependencies for settings routes.
type SettingsRouteConfig struct {
	SettingsHandler *handlers.SettingsHandler
}

// SetupSettingsRoutes configures the global settings routes.
func SetupSettingsRoutes(engine *gin.Engine, cfg *SettingsRouteConfig) {
	settings := engine.Group("/api/settings")
	{
		settings.GET("", cfg.SettingsHandler.GetSettings)
		settings.POST("", cfg.SettingsHandler.UpdateSettings)
	}
}
