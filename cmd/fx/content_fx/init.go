package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shootbook/internal/api/controllers"
	"shootbook/internal/repositories"
	"shootbook/internal/services"
)

var Module = fx.Provide(
	provideContentRepo, provideContentService, provideContentController)

func provideContentRepo(db *gorm.DB) repositories.ContentRepositoryInterface {
	return repositories.NewContentRepository(db)
}

func provideContentService(contentRepo repositories.ContentRepositoryInterface) services.ContentServiceInterface {
	return services.NewContentService(contentRepo)
}

func provideContentController(contentService services.ContentServiceInterface) *controllers.ContentController {
	return controllers.NewContentController(contentService)
}
