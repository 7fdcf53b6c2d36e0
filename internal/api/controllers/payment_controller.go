package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"shootbook/internal/services"
	"shootbook/pkg/utils"
)

const maxWebhookBody = 1 << 20

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// HandleWebhook receives Paystack events. The signature is computed over
// the raw body, so it must be read before any binding.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable body")
		return
	}

	outcome, err := p.paymentService.HandleWebhook(c.Request.Context(), body, c.GetHeader("x-paystack-signature"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, outcome, "Webhook received")
}
