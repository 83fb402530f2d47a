// Package http assembles the gin engine: repositories, use cases, handlers
// and routes, in that order.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cataloguc "quotecraft/internal/application/catalog/usecases"
	contactuc "quotecraft/internal/application/contact/usecases"
	purchaseuc "quotecraft/internal/application/purchase/usecases"
	settingsuc "quotecraft/internal/application/settings/usecases"
	"quotecraft/internal/infrastructure/cache"
	"quotecraft/internal/infrastructure/config"
	"quotecraft/internal/infrastructure/crm"
	"quotecraft/internal/infrastructure/repository"
	"quotecraft/internal/interfaces/http/handlers"
	"quotecraft/internal/interfaces/http/middleware"
	"quotecraft/internal/interfaces/http/routes"
	shareddb "quotecraft/internal/shared/db"
	"quotecraft/internal/shared/logger"
)

// settingsCacheTTL bounds staleness of the cached pricing floor.
const settingsCacheTTL = 5 * time.Minute

// Router holds the engine and the handlers wired into it.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	serviceHandler  *handlers.ServiceHandler
	purchaseHandler *handlers.PurchaseHandler
	contactHandler  *handlers.ContactHandler
	webhookHandler  *handlers.WebhookHandler
	settingsHandler *handlers.SettingsHandler
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	txManager := shareddb.NewTransactionManager(db)

	serviceRepo := repository.NewServiceRepository(db, log)
	purchaseRepo := repository.NewPurchaseRepository(db, log)
	contactRepo := repository.NewContactRepository(db, log)
	settingsRepo := repository.NewSettingsRepository(db, log)
	credRepo := repository.NewCRMCredentialRepository(db, log)
	webhookLogRepo := repository.NewWebhookLogRepository(db, log)

	settingsCache := cache.NewSettingsCache(redisClient, settingsCacheTTL)
	crmClient := crm.NewClient(&cfg.CRM, credRepo, log)

	getSettingsUC := settingsuc.NewGetSettingsUseCase(settingsRepo, settingsCache, log)
	updateSettingsUC := settingsuc.NewUpdateSettingsUseCase(settingsRepo, settingsCache, log)

	createServicesUC := cataloguc.NewCreateServicesUseCase(serviceRepo, txManager, updateSettingsUC, log)
	updateServiceUC := cataloguc.NewUpdateServiceUseCase(serviceRepo, log)
	deleteServiceUC := cataloguc.NewDeleteServiceUseCase(serviceRepo, log)
	getServiceUC := cataloguc.NewGetServiceUseCase(serviceRepo, log)
	listServicesUC := cataloguc.NewListServicesUseCase(serviceRepo, log)
	toggleActiveUC := cataloguc.NewToggleActiveUseCase(serviceRepo, log)
	duplicateServiceUC := cataloguc.NewDuplicateServiceUseCase(serviceRepo, log)

	syncContactUC := contactuc.NewSyncContactUseCase(contactRepo, log)
	deleteContactUC := contactuc.NewDeleteContactUseCase(contactRepo, log)
	searchContactsUC := contactuc.NewSearchContactsUseCase(contactRepo, log)
	validateLocationUC := contactuc.NewValidateLocationUseCase(credRepo, log)
	processWebhookUC := contactuc.NewProcessWebhookUseCase(
		webhookLogRepo, syncContactUC, deleteContactUC, crmClient, credRepo, log)

	createPurchaseUC := purchaseuc.NewCreatePurchaseUseCase(
		purchaseRepo, serviceRepo, contactRepo, txManager, crmClient,
		purchaseuc.ReviewLinkConfig{
			FrontendURL: cfg.Server.FrontendURL,
			FieldID:     cfg.CRM.ReviewLinkFieldID,
		}, log)
	getPurchaseUC := purchaseuc.NewGetPurchaseUseCase(purchaseRepo, contactRepo, getSettingsUC, log)
	finalizePurchaseUC := purchaseuc.NewFinalizePurchaseUseCase(
		purchaseRepo, txManager, crmClient,
		purchaseuc.AcceptanceConfig{
			AcceptedTag:       cfg.CRM.AcceptedTag,
			QuoteTotalFieldID: cfg.CRM.QuoteTotalFieldID,
		}, log)
	deletePurchasedServiceUC := purchaseuc.NewDeletePurchasedServiceUseCase(purchaseRepo, getPurchaseUC, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		serviceHandler: handlers.NewServiceHandler(
			createServicesUC, updateServiceUC, deleteServiceUC, getServiceUC,
			listServicesUC, toggleActiveUC, duplicateServiceUC, log),
		purchaseHandler: handlers.NewPurchaseHandler(
			createPurchaseUC, getPurchaseUC, finalizePurchaseUC, deletePurchasedServiceUC, log),
		contactHandler:  handlers.NewContactHandler(searchContactsUC, validateLocationUC, log),
		webhookHandler:  handlers.NewWebhookHandler(processWebhookUC, log),
		settingsHandler: handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC, log),
	}
}

// SetupRoutes installs middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupServiceRoutes(r.engine, &routes.ServiceRouteConfig{
		ServiceHandler: r.serviceHandler,
	})
	routes.SetupPurchaseRoutes(r.engine, &routes.PurchaseRouteConfig{
		PurchaseHandler: r.purchaseHandler,
	})
	routes.SetupContactRoutes(r.engine, &routes.ContactRouteConfig{
		ContactHandler: r.contactHandler,
		WebhookHandler: r.webhookHandler,
	})
	routes.SetupSettingsRoutes(r.engine, &routes.SettingsRouteConfig{
		SettingsHandler: r.settingsHandler,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
