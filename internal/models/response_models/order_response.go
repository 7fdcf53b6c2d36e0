package response_models

import "github.com/shopspring/decimal"

type AddOnLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PriceBreakdown struct {
	PackagePrice decimal.Decimal `json:"packagePrice"`
	AddOnsTotal  decimal.Decimal `json:"addOnsTotal"`
	AddOns       []AddOnLine     `json:"addOns,omitempty"`
}

type PriceVerification struct {
	Valid       bool            `json:"valid"`
	Currency    string          `json:"currency"`
	ClientTotal decimal.Decimal `json:"clientTotal"`
	ServerTotal decimal.Decimal `json:"serverTotal"`
	Difference  decimal.Decimal `json:"difference"`
	Breakdown   PriceBreakdown  `json:"breakdown"`
}

type OrderResult struct {
	Success  bool     `json:"success"`
	OrderID  string   `json:"orderId"`
	Status   string   `json:"status"`
	Verified bool     `json:"verified"`
	Warnings []string `json:"warnings,omitempty"`
}

type OrderRecordResponse struct {
	OrderID          string `json:"orderId"`
	Country          string `json:"country"`
	Phone            string `json:"phone"`
	Category         string `json:"category"`
	PackageID        string `json:"packageId"`
	Total            string `json:"total"`
	Status           string `json:"status"`
	PaymentReference string `json:"paymentReference,omitempty"`
	PriceVerified    bool   `json:"priceVerified"`
	CreatedAt        string `json:"createdAt"`
	ConfirmedAt      string `json:"confirmedAt,omitempty"`
}

type UploadResponse struct {
	FileID   string `json:"fileId"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
