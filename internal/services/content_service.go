package services

import (
	"context"

	"shootbook/internal/models/db_models"
	"shootbook/internal/models/response_models"
	"shootbook/internal/repositories"
	"shootbook/pkg/utils"
)

type ContentServiceInterface interface {
	ListTestimonials(ctx context.Context, filter repositories.ContentFilter, page, pageSize int) (*response_models.Page[response_models.TestimonialResponse], error)
	ListTransformations(ctx context.Context, filter repositories.ContentFilter, page, pageSize int) (*response_models.Page[response_models.TransformationResponse], error)
}

type ContentService struct {
	contentRepo repositories.ContentRepositoryInterface
}

func NewContentService(contentRepo repositories.ContentRepositoryInterface) ContentServiceInterface {
	return &ContentService{contentRepo: contentRepo}
}

func (s *ContentService) ListTestimonials(ctx context.Context, filter repositories.ContentFilter, page, pageSize int) (*response_models.Page[response_models.TestimonialResponse], error) {
	items, total, err := s.contentRepo.ListTestimonials(ctx, filter, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TestimonialResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTestimonialResponse(t))
	}
	return &response_models.Page[response_models.TestimonialResponse]{Items: out, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *ContentService) ListTransformations(ctx context.Context, filter repositories.ContentFilter, page, pageSize int) (*response_models.Page[response_models.TransformationResponse], error) {
	items, total, err := s.contentRepo.ListTransformations(ctx, filter, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TransformationResponse, 0, len(items))
	for _, t := range items {
		out = append(out, response_models.TransformationResponse{
			ID:        t.ID.String(),
			Title:     t.Title,
			Category:  t.Category,
			BeforeURL: t.BeforeURL,
			AfterURL:  t.AfterURL,
			Caption:   t.Caption,
		})
	}
	return &response_models.Page[response_models.TransformationResponse]{Items: out, Page: page, PageSize: pageSize, Total: total}, nil
}

func toTestimonialResponse(t db_models.Testimonial) response_models.TestimonialResponse {
	return response_models.TestimonialResponse{
		ID:           t.ID.String(),
		CustomerName: t.CustomerName,
		Category:     t.Category,
		Country:      t.Country,
		Quote:        t.Quote,
		Rating:       t.Rating,
		PhotoURL:     t.PhotoURL,
	}
}
