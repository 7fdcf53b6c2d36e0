package controllers

import (
	"github.com/gin-gonic/gin"

	"shootbook/internal/repositories"
	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{contentService: contentService}
}

func contentFilter(c *gin.Context) repositories.ContentFilter {
	return repositories.ContentFilter{
		Category: utils.SanitizeText(c.Query("category"), 64),
		Country:  utils.SanitizeText(c.Query("country"), 2),
	}
}

func (cc *ContentController) ListTestimonials(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := cc.contentService.ListTestimonials(c.Request.Context(), contentFilter(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Fetched testimonials successfully")
}

func (cc *ContentController) ListTransformations(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := cc.contentService.ListTransformations(c.Request.Context(), contentFilter(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Fetched transformations successfully")
}
