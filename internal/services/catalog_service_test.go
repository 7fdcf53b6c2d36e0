package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootbook/internal/catalog"
	"shootbook/internal/models/request_models"
	"shootbook/pkg/utils"
)

func TestCatalogService_Lists(t *testing.T) {
	cat := catalog.Default()
	svc := NewCatalogService(cat, NewPricingService(cat))

	pkgs, err := svc.ListPackages("ng", "birthday")
	require.NoError(t, err)
	assert.Len(t, pkgs, 3)

	_, err = svc.ListPackages("KE", "")
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)

	_, err = svc.ListPackages("NG", "weddings")
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)

	addOns, err := svc.ListAddOns("GH")
	require.NoError(t, err)
	assert.Equal(t, "extra-image", addOns[0].ID)
}

func TestCatalogService_Quote(t *testing.T) {
	cat := catalog.Default()
	svc := NewCatalogService(cat, NewPricingService(cat))

	v, err := svc.Quote(context.Background(), request_models.QuoteRequest{
		OrderID:   "RAD-123456-ABC",
		Category:  "birthday",
		PackageID: "birthday-basic",
		AddOns:    []string{"extra-image", "unknown"},
		Total:     d(5000),
	})
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Len(t, v.Breakdown.AddOns, 1)

	_, err = svc.Quote(context.Background(), request_models.QuoteRequest{Category: "birthday", PackageID: "birthday-basic"})
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)

	_, err = svc.Quote(context.Background(), request_models.QuoteRequest{Country: "GH", Category: "birthday", PackageID: "nope"})
	assert.ErrorIs(t, err, catalog.ErrUnknownPackage)
}
