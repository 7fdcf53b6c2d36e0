package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootbook/internal/models/request_models"
	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogService
}

func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func (cc *CatalogController) ListPackages(c *gin.Context) {
	pkgs, err := cc.catalogService.ListPackages(c.DefaultQuery("country", "NG"), c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkgs, "Fetched packages successfully")
}

func (cc *CatalogController) ListAddOns(c *gin.Context) {
	addOns, err := cc.catalogService.ListAddOns(c.DefaultQuery("country", "NG"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, addOns, "Fetched add-ons successfully")
}

func (cc *CatalogController) Quote(c *gin.Context) {
	var req request_models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	v, err := cc.catalogService.Quote(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, v, "Quote computed")
}
