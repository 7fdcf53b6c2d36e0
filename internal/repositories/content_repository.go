package repositories

import (
	"context"

	"gorm.io/gorm"

	"shootbook/internal/models/db_models"
)

type ContentFilter struct {
	Category string
	Country  string
}

type ContentRepositoryInterface interface {
	ListTestimonials(ctx context.Context, f ContentFilter, page, pageSize int) ([]db_models.Testimonial, int64, error)
	ListTransformations(ctx context.Context, f ContentFilter, page, pageSize int) ([]db_models.Transformation, int64, error)
}

func NewContentRepository(db *gorm.DB) ContentRepositoryInterface {
	return &ContentRepository{db: db}
}

type ContentRepository struct {
	db *gorm.DB
}

func (r ContentRepository) ListTestimonials(ctx context.Context, f ContentFilter, page, pageSize int) ([]db_models.Testimonial, int64, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Testimonial{}).Where("published = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Country != "" {
		q = q.Where("country = ? OR country = ''", f.Country)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []db_models.Testimonial
	err := q.Scopes(paginate(page, pageSize)).Order("sort_order ASC, created_at DESC").Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r ContentRepository) ListTransformations(ctx context.Context, f ContentFilter, page, pageSize int) ([]db_models.Transformation, int64, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Transformation{}).Where("published = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []db_models.Transformation
	err := q.Scopes(paginate(page, pageSize)).Order("sort_order ASC, created_at DESC").Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
