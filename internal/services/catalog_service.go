package services

import (
	"context"

	"shootbook/internal/catalog"
	"shootbook/internal/models/request_models"
	"shootbook/internal/models/response_models"
	"shootbook/pkg/utils"
)

// CatalogService serves the public price list and quotes.
type CatalogService interface {
	ListPackages(country, category string) ([]catalog.Package, error)
	ListAddOns(country string) ([]catalog.AddOn, error)
	Quote(ctx context.Context, req request_models.QuoteRequest) (*response_models.PriceVerification, error)
}

type catalogService struct {
	catalog *catalog.Catalog
	pricing PricingService
}

func NewCatalogService(c *catalog.Catalog, pricing PricingService) CatalogService {
	return &catalogService{catalog: c, pricing: pricing}
}

func (s *catalogService) table(country string) (*catalog.Table, error) {
	c, err := catalog.ParseCountry(country)
	if err != nil {
		return nil, utils.NewValidationError("country", "must be NG or GH")
	}
	return s.catalog.Lookup(c)
}

func (s *catalogService) ListPackages(country, category string) ([]catalog.Package, error) {
	t, err := s.table(country)
	if err != nil {
		return nil, err
	}
	pkgs, err := t.Packages(category)
	if err != nil {
		return nil, utils.NewValidationError("category", "%v", err)
	}
	return pkgs, nil
}

func (s *catalogService) ListAddOns(country string) ([]catalog.AddOn, error) {
	t, err := s.table(country)
	if err != nil {
		return nil, err
	}
	return t.AddOns(), nil
}

// Quote prices a selection. The country comes from the request or, when
// absent, from the order id prefix.
func (s *catalogService) Quote(ctx context.Context, req request_models.QuoteRequest) (*response_models.PriceVerification, error) {
	var (
		country catalog.Country
		err     error
	)
	switch {
	case req.Country != "":
		country, err = catalog.ParseCountry(req.Country)
	case req.OrderID != "":
		country, err = catalog.CountryFromOrderID(req.OrderID)
	default:
		return nil, utils.NewValidationError("country", "is required")
	}
	if err != nil {
		return nil, utils.NewValidationError("country", "%v", err)
	}

	return s.pricing.VerifyOrderPrice(ctx, PriceCheck{
		Country:      country,
		Category:     utils.SanitizeText(req.Category, 64),
		PackageID:    utils.SanitizeText(req.PackageID, 64),
		GroupSize:    req.GroupSize,
		AddOns:       utils.SanitizeList(req.AddOns, 64),
		ClaimedTotal: req.Total,
	})
}
