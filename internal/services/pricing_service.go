package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"shootbook/internal/catalog"
	"shootbook/internal/models/response_models"
	"shootbook/pkg/utils"
)

var (
	priceTolerance    = decimal.NewFromFloat(0.01)
	minimumPriceSlack = decimal.NewFromInt(1)
)

type PriceCheck struct {
	Country      catalog.Country
	Category     string
	PackageID    string
	GroupSize    int
	AddOns       []string
	ClaimedTotal decimal.Decimal
}

// PriceLookupError reports a category or package the catalog does not know.
type PriceLookupError struct {
	Err error
}

func (e *PriceLookupError) Error() string { return "price lookup: " + e.Err.Error() }

func (e *PriceLookupError) Unwrap() []error { return []error{e.Err, utils.ErrInvalidRequest} }

type PricingService interface {
	VerifyOrderPrice(ctx context.Context, check PriceCheck) (*response_models.PriceVerification, error)
}

type pricingService struct {
	catalog *catalog.Catalog
}

func NewPricingService(c *catalog.Catalog) PricingService {
	return &pricingService{catalog: c}
}

// VerifyOrderPrice recomputes the total from the catalog. The claim is valid
// when it is within 1% of the computed total, or within one currency unit
// for small amounts. Unknown add-ons are ignored.
func (p *pricingService) VerifyOrderPrice(_ context.Context, check PriceCheck) (*response_models.PriceVerification, error) {
	table, err := p.catalog.Lookup(check.Country)
	if err != nil {
		return nil, &PriceLookupError{Err: err}
	}
	pkg, err := table.Package(check.Category, check.PackageID)
	if err != nil {
		return nil, &PriceLookupError{Err: err}
	}
	packagePrice, err := table.GroupPrice(check.Category, pkg, check.GroupSize)
	if err != nil {
		return nil, &PriceLookupError{Err: err}
	}

	breakdown := response_models.PriceBreakdown{
		PackagePrice: packagePrice,
		AddOnsTotal:  decimal.Zero,
	}
	seen := make(map[string]struct{}, len(check.AddOns))
	for _, id := range check.AddOns {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		addOn, ok := table.AddOn(id)
		if !ok {
			continue
		}
		breakdown.AddOnsTotal = breakdown.AddOnsTotal.Add(addOn.Price)
		breakdown.AddOns = append(breakdown.AddOns, response_models.AddOnLine{
			ID:    addOn.ID,
			Name:  addOn.Name,
			Price: addOn.Price,
		})
	}

	serverTotal := breakdown.PackagePrice.Add(breakdown.AddOnsTotal)
	difference := check.ClaimedTotal.Sub(serverTotal).Abs()

	return &response_models.PriceVerification{
		Valid:       difference.LessThanOrEqual(allowedDifference(serverTotal)),
		Currency:    table.Currency,
		ClientTotal: check.ClaimedTotal,
		ServerTotal: serverTotal,
		Difference:  difference,
		Breakdown:   breakdown,
	}, nil
}

func allowedDifference(total decimal.Decimal) decimal.Decimal {
	return decimal.Max(total.Mul(priceTolerance), minimumPriceSlack)
}

func priceMismatch(v *response_models.PriceVerification) error {
	return &utils.DetailedError{
		Err:     utils.ErrPriceMismatch,
		Message: fmt.Sprintf("claimed %s %s, expected %s", v.ClientTotal, v.Currency, v.ServerTotal),
		Details: v,
	}
}
