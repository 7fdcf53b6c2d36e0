package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"shootbook/internal/models/request_models"
	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

const maxOrderPhotos = 10

type OrderController struct {
	orderService   services.OrderService
	paymentService services.PaymentService
	logger         *zap.Logger
}

func NewOrderController(orderService services.OrderService, paymentService services.PaymentService, logger *zap.Logger) *OrderController {
	return &OrderController{
		orderService:   orderService,
		paymentService: paymentService,
		logger:         logger,
	}
}

// SubmitOrder accepts the booking form as multipart: an orderData JSON field
// plus optional photos.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, (maxOrderPhotos+1)*services.MaxUploadBytes)

	form, err := readMultipart(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	raw := firstValue(form, "orderData")
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, "orderData is required")
		return
	}

	var order request_models.OrderPayload
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "orderData must be valid JSON")
		return
	}
	if err := binding.Validator.ValidateStruct(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	status := services.StatusPending
	if order.Status != "" {
		parsed, err := services.ParseOrderStatus(order.Status)
		if err != nil || parsed == services.StatusWebhookRecovery {
			utils.RespondError(c, http.StatusBadRequest, "status must be pending or confirmed")
			return
		}
		status = parsed
	}

	if status == services.StatusConfirmed {
		if err := oc.verifyPayment(c, order.PaymentReference); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	}

	photos, err := readPhotos(form)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := oc.orderService.ProcessOrder(c.Request.Context(), order, status, photos)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Order received")
}

// ConfirmOrder records a payment for an order that was submitted as pending.
func (oc *OrderController) ConfirmOrder(c *gin.Context) {
	var req request_models.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	if err := oc.verifyPayment(c, req.Reference); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := oc.orderService.ConfirmOrder(c.Request.Context(), req.OrderID, req.Reference)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Order confirmed")
}

// verifyPayment checks the reference format and, when the gateway is
// configured, that the transaction actually succeeded.
func (oc *OrderController) verifyPayment(c *gin.Context, reference string) error {
	if err := services.ValidatePaymentReference(reference); err != nil {
		return err
	}
	if !oc.paymentService.Enabled() {
		oc.logger.Warn("payment gateway not configured, reference not verified",
			zap.String("reference", reference),
			zap.String("trace_id", c.GetString("trace_id")))
		return nil
	}
	_, err := oc.paymentService.VerifyTransaction(c.Request.Context(), reference)
	return err
}

// readMultipart parses the whole form up front so a truncated or malformed
// part fails the request instead of silently dropping photos.
func readMultipart(c *gin.Context) (*multipart.Form, error) {
	form, err := c.MultipartForm()
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return form, nil
	case errors.Is(err, http.ErrNotMultipart):
		return nil, utils.NewValidationError("body", "must be multipart/form-data")
	case errors.As(err, &tooLarge):
		return nil, &utils.DetailedError{Err: utils.ErrFileTooLarge, Message: "Request body too large"}
	}
	return nil, utils.NewValidationError("body", "malformed multipart form")
}

func firstValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func readPhotos(form *multipart.Form) ([]services.Photo, error) {
	files := form.File["photos"]
	if len(files) > maxOrderPhotos {
		return nil, utils.NewValidationError("photos", "at most %d photos per order", maxOrderPhotos)
	}

	photos := make([]services.Photo, 0, len(files))
	for _, fh := range files {
		p, err := readPhoto(fh)
		if err != nil {
			return nil, fmt.Errorf("photo %q: %w", fh.Filename, err)
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func readPhoto(fh *multipart.FileHeader) (services.Photo, error) {
	if fh.Size > services.MaxUploadBytes {
		return services.Photo{}, &utils.DetailedError{Err: utils.ErrFileTooLarge, Message: "File exceeds 10 MiB"}
	}
	f, err := fh.Open()
	if err != nil {
		return services.Photo{}, utils.NewValidationError("photos", "could not be read")
	}
	defer f.Close()
	return services.PhotoFromUpload(strings.TrimSpace(fh.Filename), f)
}
