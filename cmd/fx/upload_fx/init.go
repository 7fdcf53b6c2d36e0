package upload_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/internal/api/controllers"
	"shootbook/internal/config"
	"shootbook/internal/services"
)

var Module = fx.Provide(provideUploadService, provideUploadController)

func provideUploadService(cfg *config.Config, logger *zap.Logger) services.UploadService {
	store, err := services.NewDriveStore(context.Background(), cfg.Google.CredentialsJSON, cfg.Google.DriveFolderID)
	if err != nil {
		logger.Warn("uploads disabled", zap.Error(err))
		return services.NewUploadService(nil, logger.Named("uploads"))
	}
	return services.NewUploadService(store, logger.Named("uploads"))
}

func provideUploadController(uploadService services.UploadService) *controllers.UploadController {
	return controllers.NewUploadController(uploadService)
}
