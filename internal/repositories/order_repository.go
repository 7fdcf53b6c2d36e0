package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shootbook/internal/models/db_models"
)

type OrderRepositoryInterface interface {
	Save(ctx context.Context, rec *db_models.OrderRecord) error
	FindByOrderID(ctx context.Context, orderID string) (*db_models.OrderRecord, error)
	MarkConfirmed(ctx context.Context, orderID, reference string, confirmedAt int64) (bool, error)
	List(ctx context.Context, status string, page, pageSize int) ([]db_models.OrderRecord, int64, error)
	RecordWebhookEvent(ctx context.Context, ev *db_models.PaymentWebhookEvent) error
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

type OrderRepository struct {
	db *gorm.DB
}

// Save inserts the record or, when the order id already exists, replaces
// its mutable columns.
func (o *OrderRepository) Save(ctx context.Context, rec *db_models.OrderRecord) error {
	return o.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phone", "category", "package_id", "total", "status",
			"payment_reference", "price_verified", "confirmed_at", "payload", "updated_at",
		}),
	}).Create(rec).Error
}

func (o *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*db_models.OrderRecord, error) {
	var rec db_models.OrderRecord
	err := o.db.WithContext(ctx).Where("order_id = ?", orderID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// MarkConfirmed reports false when no record exists for orderID.
func (o *OrderRepository) MarkConfirmed(ctx context.Context, orderID, reference string, confirmedAt int64) (bool, error) {
	res := o.db.WithContext(ctx).
		Model(&db_models.OrderRecord{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":            db_models.OrderRecordConfirmed,
			"payment_reference": reference,
			"confirmed_at":      confirmedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (o *OrderRepository) List(ctx context.Context, status string, page, pageSize int) ([]db_models.OrderRecord, int64, error) {
	q := o.db.WithContext(ctx).Model(&db_models.OrderRecord{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []db_models.OrderRecord
	err := q.Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (o *OrderRepository) RecordWebhookEvent(ctx context.Context, ev *db_models.PaymentWebhookEvent) error {
	return o.db.WithContext(ctx).Create(ev).Error
}

func paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}
