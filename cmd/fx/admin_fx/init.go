package admin_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/internal/api/controllers"
	"shootbook/internal/config"
	"shootbook/internal/repositories"
	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAdminService, provideAdminController)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
}

func provideAdminService(cfg *config.Config, tokens *utils.TokenIssuer, orderRepo repositories.OrderRepositoryInterface, logger *zap.Logger) services.AdminServiceInterface {
	if cfg.Admin.PasswordHash == "" || cfg.Admin.JWTSecret == "" {
		logger.Warn("admin login disabled: ADMIN_PASSWORD_HASH or JWT_SECRET not set")
	}
	return services.NewAdminService(cfg.Admin.PasswordHash, tokens, cfg.Admin.TokenTTL, orderRepo, logger.Named("admin"))
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
