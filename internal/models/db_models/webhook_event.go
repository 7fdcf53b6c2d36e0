package db_models

import "gorm.io/datatypes"

// PaymentWebhookEvent keeps every verified gateway callback for audit.
type PaymentWebhookEvent struct {
	BaseModel
	Provider  string         `gorm:"size:20;index"`
	EventType string         `gorm:"size:64;index"`
	Reference string         `gorm:"size:100;index"`
	OrderID   string         `gorm:"size:32;index"`
	Outcome   string         `gorm:"size:32"`
	Detail    string         `gorm:"type:text"`
	Payload   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
