package payment_service_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/internal/api/controllers"
	"shootbook/internal/config"
	"shootbook/internal/repositories"
	"shootbook/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePaymentController,
)

func providePaymentService(cfg *config.Config, orders services.OrderService, orderRepo repositories.OrderRepositoryInterface, logger *zap.Logger) services.PaymentService {
	if cfg.Paystack.SecretKey == "" {
		logger.Warn("PAYSTACK_SECRET_KEY not set: webhooks will be rejected and references not verified")
	}
	return services.NewPaymentService(services.PaystackConfig{
		SecretKey:    cfg.Paystack.SecretKey,
		BaseURL:      cfg.Paystack.BaseURL,
		Timeout:      cfg.Paystack.Timeout,
		ProviderName: "paystack",
	}, orders, orderRepo, logger.Named("payments"))
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
