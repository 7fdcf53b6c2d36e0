package order_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shootbook/internal/api/controllers"
	"shootbook/internal/catalog"
	"shootbook/internal/config"
	"shootbook/internal/repositories"
	"shootbook/internal/services"
)

var Module = fx.Provide(
	catalog.Default,
	provideOrderRepo,
	providePricingService,
	provideOrderService,
	provideCatalogService,
	provideOrderController,
	provideCatalogController,
)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepositoryInterface {
	return repositories.NewOrderRepository(db)
}

func providePricingService(c *catalog.Catalog) services.PricingService {
	return services.NewPricingService(c)
}

func provideOrderService(
	pricing services.PricingService,
	c *catalog.Catalog,
	notifier services.Notifier,
	ledger services.LedgerWriter,
	orderRepo repositories.OrderRepositoryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) services.OrderService {
	return services.NewOrderService(pricing, c, notifier, ledger, orderRepo,
		services.OrderServiceConfig{ImageSendDelay: cfg.ImageSendDelay}, logger.Named("orders"))
}

func provideCatalogService(c *catalog.Catalog, pricing services.PricingService) services.CatalogService {
	return services.NewCatalogService(c, pricing)
}

func provideOrderController(orders services.OrderService, payments services.PaymentService, logger *zap.Logger) *controllers.OrderController {
	return controllers.NewOrderController(orders, payments, logger.Named("orders"))
}

func provideCatalogController(catalogService services.CatalogService) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
