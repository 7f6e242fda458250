package orders

import (
	"context"
	"testing"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCatalog struct {
	products map[uuid.UUID]*models.Product
	services map[uuid.UUID]*models.ServiceOffering
	addons   map[uuid.UUID]*models.Addon
	slugs    map[string]*models.Addon
	bundles  map[uuid.UUID]*models.Bundle
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		products: map[uuid.UUID]*models.Product{},
		services: map[uuid.UUID]*models.ServiceOffering{},
		addons:   map[uuid.UUID]*models.Addon{},
		slugs:    map[string]*models.Addon{},
		bundles:  map[uuid.UUID]*models.Bundle{},
	}
}

func (s *stubCatalog) FindProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalog) FindServiceByID(_ context.Context, id uuid.UUID) (*models.ServiceOffering, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalog) FindAddonByID(_ context.Context, id uuid.UUID) (*models.Addon, error) {
	if a, ok := s.addons[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalog) FindAddonBySlug(_ context.Context, slug string) (*models.Addon, error) {
	if a, ok := s.slugs[slug]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalog) FindBundleByID(_ context.Context, id uuid.UUID) (*models.Bundle, error) {
	if b, ok := s.bundles[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestResolver(t *testing.T, catalog CatalogReader) *Resolver {
	t.Helper()
	resolver, err := NewResolver(catalog)
	require.NoError(t, err)
	return resolver
}

func TestResolveProductAppliesVariantModifiers(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	productID := uuid.New()
	catalog.products[productID] = &models.Product{ID: productID, Name: "Rose Box", BasePrice: 15000}
	resolver := newTestResolver(t, catalog)

	item, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:        "PRODUCT",
		ReferenceID: productID.String(),
		Quantity:    2,
		VariantSelection: types.VariantSelection{
			"size":   {Value: "deluxe", PriceModifier: 5000},
			"ribbon": {Value: "gold"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, enums.LineTypeProduct, item.LineType)
	assert.Equal(t, "Rose Box", item.Name)
	assert.Equal(t, 20000, item.UnitPrice)
	assert.Equal(t, 40000, item.LineTotal)
}

func TestResolveProductNotFound(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, newStubCatalog())
	missing := uuid.New().String()

	_, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:        "PRODUCT",
		ReferenceID: missing,
		Quantity:    1,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Contains(t, typed.Message(), missing)
}

func TestResolveProductRejectsNegativeUnitPrice(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	productID := uuid.New()
	catalog.products[productID] = &models.Product{ID: productID, Name: "Sampler", BasePrice: 1000}
	resolver := newTestResolver(t, catalog)

	_, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:             "PRODUCT",
		ReferenceID:      productID.String(),
		Quantity:         1,
		VariantSelection: types.VariantSelection{"size": {Value: "mini", PriceModifier: -2000}},
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestResolveServiceCarriesBookingMetadata(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	serviceID := uuid.New()
	catalog.services[serviceID] = &models.ServiceOffering{ID: serviceID, Name: "Surprise Serenade", BasePrice: 25000}
	resolver := newTestResolver(t, catalog)

	item, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:        "SERVICE",
		ReferenceID: serviceID.String(),
		Quantity:    1,
		BookingDate: "2026-02-14",
		BookingTime: "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 25000, item.UnitPrice)
	require.NotNil(t, item.BookingDate)
	assert.Equal(t, "2026-02-14", *item.BookingDate)
	require.NotNil(t, item.BookingTime)
	assert.Equal(t, "18:00", *item.BookingTime)
}

func TestResolveAddonHonorsProposedPriceOnlyAtZero(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	freeID := uuid.New()
	pricedID := uuid.New()
	catalog.addons[freeID] = &models.Addon{ID: freeID, Name: "Curated Surprise", Price: 0}
	catalog.addons[pricedID] = &models.Addon{ID: pricedID, Name: "Gift Wrapping", Price: 2000}
	resolver := newTestResolver(t, catalog)
	proposed := 75000

	item, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:            "ADDON",
		ReferenceID:     freeID.String(),
		Quantity:        1,
		PriceAtPurchase: &proposed,
	})
	require.NoError(t, err)
	assert.Equal(t, 75000, item.UnitPrice)

	// A priced addon ignores any client claim.
	item, err = resolver.Resolve(context.Background(), CartLineInput{
		Type:            "ADDON",
		ReferenceID:     pricedID.String(),
		Quantity:        1,
		PriceAtPurchase: &proposed,
	})
	require.NoError(t, err)
	assert.Equal(t, 2000, item.UnitPrice)
}

func TestResolveAddonZeroPriceWithoutProposal(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	freeID := uuid.New()
	catalog.addons[freeID] = &models.Addon{ID: freeID, Name: "Curated Surprise", Price: 0}
	resolver := newTestResolver(t, catalog)

	item, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:        "ADDON",
		ReferenceID: freeID.String(),
		Quantity:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, item.UnitPrice)
	assert.Equal(t, 0, item.LineTotal)
}

func TestResolveAddonFallsBackToSlug(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	addon := &models.Addon{ID: uuid.New(), Name: "Handling", Slug: "handling-fee", Price: 1500}
	catalog.slugs["handling-fee"] = addon
	resolver := newTestResolver(t, catalog)

	item, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:        "ADDON",
		ReferenceID: "handling-fee",
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1500, item.UnitPrice)

	_, err = resolver.Resolve(context.Background(), CartLineInput{
		Type:        "ADDON",
		ReferenceID: "missing-slug",
		Quantity:    1,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestResolveBundleUsesBundlePriceVerbatim(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	bundleID := uuid.New()
	catalog.bundles[bundleID] = &models.Bundle{
		ID:       bundleID,
		Name:     "Date Night Box",
		Price:    60000,
		Contents: []string{"Rose Box", "Chocolates", "Candle"},
	}
	resolver := newTestResolver(t, catalog)

	item, err := resolver.Resolve(context.Background(), CartLineInput{
		Type:        "BUNDLE",
		ReferenceID: bundleID.String(),
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 60000, item.UnitPrice)
}

func TestResolveRejectsBadInput(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, newStubCatalog())
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, CartLineInput{Type: "VOUCHER", ReferenceID: "x", Quantity: 1})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = resolver.Resolve(ctx, CartLineInput{Type: "PRODUCT", ReferenceID: uuid.New().String(), Quantity: 0})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = resolver.Resolve(ctx, CartLineInput{Type: "PRODUCT", ReferenceID: "not-a-uuid", Quantity: 1})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestResolveAllPreservesOrderAndFailsAtomically(t *testing.T) {
	t.Parallel()

	catalog := newStubCatalog()
	productID := uuid.New()
	addonID := uuid.New()
	catalog.products[productID] = &models.Product{ID: productID, Name: "Rose Box", BasePrice: 40000}
	catalog.addons[addonID] = &models.Addon{ID: addonID, Name: "Gift Wrapping", Price: 2000}
	resolver := newTestResolver(t, catalog)

	resolved, err := resolver.ResolveAll(context.Background(), []CartLineInput{
		{Type: "PRODUCT", ReferenceID: productID.String(), Quantity: 1},
		{Type: "ADDON", ReferenceID: addonID.String(), Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "Rose Box", resolved[0].Name)
	assert.Equal(t, "Gift Wrapping", resolved[1].Name)

	_, err = resolver.ResolveAll(context.Background(), []CartLineInput{
		{Type: "PRODUCT", ReferenceID: productID.String(), Quantity: 1},
		{Type: "ADDON", ReferenceID: uuid.New().String(), Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
