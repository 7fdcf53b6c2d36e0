package request_models

import "github.com/shopspring/decimal"

// OrderPayload is the booking form submitted by the site, also embedded in
// the payment metadata so a webhook can rebuild the order.
type OrderPayload struct {
	OrderID          string          `json:"orderId" binding:"required,max=32"`
	Phone            string          `json:"phone" binding:"required,phone"`
	Category         string          `json:"category" binding:"required,max=64"`
	PackageID        string          `json:"packageId" binding:"required,max=64"`
	PackageName      string          `json:"packageName,omitempty" binding:"max=120"`
	GroupSize        int             `json:"groupSize,omitempty" binding:"gte=0,lte=50"`
	Outfits          int             `json:"outfits,omitempty" binding:"gte=0,lte=20"`
	AddOns           []string        `json:"addOns,omitempty" binding:"max=20"`
	Hairstyle        string          `json:"hairstyle,omitempty"`
	Makeup           string          `json:"makeup,omitempty"`
	Background       string          `json:"background,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Total            decimal.Decimal `json:"total"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	PhotoURLs        []string        `json:"photoUrls,omitempty" binding:"max=20,dive,url"`
	Status           string          `json:"status,omitempty"`
}

type ConfirmOrderRequest struct {
	OrderID   string `json:"orderId" binding:"required,max=32"`
	Reference string `json:"reference" binding:"required"`
}

type QuoteRequest struct {
	Country   string          `json:"country,omitempty"`
	OrderID   string          `json:"orderId,omitempty"`
	Category  string          `json:"category" binding:"required"`
	PackageID string          `json:"packageId" binding:"required"`
	GroupSize int             `json:"groupSize,omitempty" binding:"gte=0,lte=50"`
	AddOns    []string        `json:"addOns,omitempty"`
	Total     decimal.Decimal `json:"total"`
}
