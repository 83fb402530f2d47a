package routes

import (
	"github.com/gin-gonic/gin"

	"quotecraft/internal/interfaces/http/handlers"
)

// PurchaseRouteConfig holds dependencies for purchase routes.
type PurchaseRouteConfig struct {
	PurchaseHandler *handlers.PurchaseHandler
}

// SetupPurchaseRoutes configures the quote lifecycle routes.
func SetupPurchaseRoutes(engine *gin.Engine, cfg *PurchaseRouteConfig) {
	purchases := engine.Group("/api/purchases")
	{
		purchases.POST("", cfg.PurchaseHandler.CreatePurchase)
		purchases.GET("/:id", cfg.PurchaseHandler.GetPurchase)
		purchases.POST("/:id/finalize", cfg.PurchaseHandler.FinalizePurchase)
	}

	engine.DELETE("/api/purchased-services/:id", cfg.PurchaseHandler.DeletePurchasedService)
}
