package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Resolver turns raw cart lines into priced, named line items by consulting
// the catalog. All lookups are read-only, so a multi-line cart is resolved
// concurrently.
type Resolver struct {
	catalog CatalogReader
}

// NewResolver builds a resolver over the provided catalog surface.
func NewResolver(catalog CatalogReader) (*Resolver, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	return &Resolver{catalog: catalog}, nil
}

// ResolveAll resolves every line, preserving input order. The first failure
// aborts the whole batch: the caller never persists a partial order.
func (r *Resolver) ResolveAll(ctx context.Context, lines []CartLineInput) ([]ResolvedLineItem, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	resolved := make([]ResolvedLineItem, len(lines))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, line := range lines {
		group.Go(func() error {
			item, err := r.Resolve(groupCtx, line)
			if err != nil {
				return err
			}
			resolved[i] = *item
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// Resolve prices a single cart line against the catalog.
func (r *Resolver) Resolve(ctx context.Context, line CartLineInput) (*ResolvedLineItem, error) {
	lineType, err := enums.ParseLineType(line.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown line type %q", line.Type))
	}
	if line.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quantity for %q must be at least 1", line.ReferenceID))
	}

	switch lineType {
	case enums.LineTypeProduct:
		return r.resolveProduct(ctx, line)
	case enums.LineTypeService:
		return r.resolveService(ctx, line)
	case enums.LineTypeAddon:
		return r.resolveAddon(ctx, line)
	case enums.LineTypeBundle:
		return r.resolveBundle(ctx, line)
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown line type %q", line.Type))
}

func (r *Resolver) resolveProduct(ctx context.Context, line CartLineInput) (*ResolvedLineItem, error) {
	id, err := uuid.Parse(line.ReferenceID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid product reference %q", line.ReferenceID))
	}
	product, err := r.catalog.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q not found", line.ReferenceID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up product")
	}

	// The embedded modifiers are applied as submitted; they are not
	// re-checked against the product's declared option table.
	unitPrice := product.BasePrice + line.VariantSelection.ModifierSum()
	if unitPrice < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("selections price %q below zero", product.Name))
	}

	return newResolvedItem(enums.LineTypeProduct, line, product.Name, unitPrice), nil
}

func (r *Resolver) resolveService(ctx context.Context, line CartLineInput) (*ResolvedLineItem, error) {
	id, err := uuid.Parse(line.ReferenceID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid service reference %q", line.ReferenceID))
	}
	offering, err := r.catalog.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("service %q not found", line.ReferenceID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up service")
	}

	return newResolvedItem(enums.LineTypeService, line, offering.Name, offering.BasePrice), nil
}

func (r *Resolver) resolveAddon(ctx context.Context, line CartLineInput) (*ResolvedLineItem, error) {
	addon, err := r.lookupAddon(ctx, line.ReferenceID)
	if err != nil {
		return nil, err
	}

	// Pay-what-you-choose applies only when the catalog price is exactly
	// zero; a priced addon can never be undercut by a client claim.
	unitPrice := addon.Price
	if addon.Price == 0 && line.PriceAtPurchase != nil {
		if *line.PriceAtPurchase < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("proposed price for %q below zero", addon.Name))
		}
		unitPrice = *line.PriceAtPurchase
	}

	return newResolvedItem(enums.LineTypeAddon, line, addon.Name, unitPrice), nil
}

func (r *Resolver) lookupAddon(ctx context.Context, reference string) (*models.Addon, error) {
	if id, err := uuid.Parse(reference); err == nil {
		addon, err := r.catalog.FindAddonByID(ctx, id)
		if err == nil {
			return addon, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up addon")
		}
	}

	addon, err := r.catalog.FindAddonBySlug(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("addon %q not found", reference))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up addon")
	}
	return addon, nil
}

func (r *Resolver) resolveBundle(ctx context.Context, line CartLineInput) (*ResolvedLineItem, error) {
	id, err := uuid.Parse(line.ReferenceID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid bundle reference %q", line.ReferenceID))
	}
	bundle, err := r.catalog.FindBundleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("bundle %q not found", line.ReferenceID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up bundle")
	}

	// The bundle price stands on its own; contents are informational and
	// never re-summed from constituent catalog prices.
	return newResolvedItem(enums.LineTypeBundle, line, bundle.Name, bundle.Price), nil
}

func newResolvedItem(lineType enums.LineType, line CartLineInput, name string, unitPrice int) *ResolvedLineItem {
	item := &ResolvedLineItem{
		LineType:         lineType,
		ReferenceID:      line.ReferenceID,
		Name:             name,
		Qty:              line.Quantity,
		UnitPrice:        unitPrice,
		LineTotal:        unitPrice * line.Quantity,
		VariantSelection: line.VariantSelection,
		Customization:    line.CustomizationData,
	}
	if line.BookingDate != "" {
		item.BookingDate = &line.BookingDate
	}
	if line.BookingTime != "" {
		item.BookingTime = &line.BookingTime
	}
	return item
}
