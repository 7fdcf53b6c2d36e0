package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootbook/internal/models/request_models"
	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{adminService: adminService}
}

func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	res, err := a.adminService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Login successful")
}

func (a *AdminController) ListOrders(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := a.adminService.ListOrders(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Fetched orders successfully")
}

func (a *AdminController) GetOrder(c *gin.Context) {
	res, err := a.adminService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Fetched order successfully")
}
