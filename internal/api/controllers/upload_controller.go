package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadService
}

func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

func (u *UploadController) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxUploadBytes+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "file is required")
		return
	}
	if fh.Size > services.MaxUploadBytes {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, "File exceeds 10 MiB")
		return
	}

	f, err := fh.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "file could not be read")
		return
	}
	defer f.Close()

	res, err := u.uploadService.Upload(c.Request.Context(), fh.Filename, f)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, res, "File uploaded")
}
