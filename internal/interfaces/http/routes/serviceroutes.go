// Package routes wires handler methods onto the gin engine, one file per
// bounded context.
package routes

import (
	"github.com/gin-gonic/gin"

	"quotecraft/internal/interfaces/http/handlers"
)

// ServiceRouteConfig holds dependencies for catalog routes.
type ServiceRouteConfig struct {
	ServiceHandler *handlers.ServiceHandler
}

// SetupServiceRoutes configures the catalog editing and browsing routes.
func SetupServiceRoutes(engine *gin.Engine, cfg *ServiceRouteConfig) {
	services := engine.Group("/api/services")
	{
		// Specific paths before parameterized ones.
		services.GET("/active", cfg.ServiceHandler.ListActiveServices)

		services.POST("", cfg.ServiceHandler.CreateServices)
		services.GET("", cfg.ServiceHandler.ListServices)
		services.GET("/:id", cfg.ServiceHandler.GetService)
		services.PUT("/:id", cfg.ServiceHandler.UpdateService)
		services.DELETE("/:id", cfg.ServiceHandler.DeleteService)
		services.PATCH("/:id/toggle-active", cfg.ServiceHandler.ToggleActive)
		services.POST("/:id/duplicate", cfg.ServiceHandler.DuplicateService)
	}
}
