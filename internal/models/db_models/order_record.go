package db_models

import "gorm.io/datatypes"

type OrderRecordStatus string

const (
	OrderRecordPending         OrderRecordStatus = "pending"
	OrderRecordConfirmed       OrderRecordStatus = "confirmed"
	OrderRecordWebhookRecovery OrderRecordStatus = "webhook_recovery"
)

// OrderRecord is the queryable state of a booking. The spreadsheet ledger
// remains the append-only record of every state an order went through.
type OrderRecord struct {
	BaseModel
	OrderID          string            `gorm:"size:32;uniqueIndex"`
	Country          string            `gorm:"size:2;index"`
	Phone            string            `gorm:"size:20"`
	Category         string            `gorm:"size:64"`
	PackageID        string            `gorm:"size:64"`
	Total            string            `gorm:"size:32"` // decimal string
	Status           OrderRecordStatus `gorm:"size:20;index"`
	PaymentReference string            `gorm:"size:100;index"`
	PriceVerified    bool
	ConfirmedAt      *int64
	Payload          datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
