package catalog

import (
	"context"

	"github.com/giftnest/giftnest-backend/internal/repo"
	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes read-only lookups across the four catalog families.
// The order pipeline never mutates catalog state.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindProductByID loads one product regardless of active flag.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProductBySlug loads one product by its URL slug.
func (r *Repository) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindServiceByID loads one bookable service.
func (r *Repository) FindServiceByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffering, error) {
	var svc models.ServiceOffering
	if err := r.DB(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// FindAddonByID loads one addon by primary key.
func (r *Repository) FindAddonByID(ctx context.Context, id uuid.UUID) (*models.Addon, error) {
	var addon models.Addon
	if err := r.DB(ctx).First(&addon, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &addon, nil
}

// FindAddonBySlug loads one addon by its human-readable slug.
func (r *Repository) FindAddonBySlug(ctx context.Context, slug string) (*models.Addon, error) {
	var addon models.Addon
	if err := r.DB(ctx).First(&addon, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &addon, nil
}

// FindBundleByID loads one bundle.
func (r *Repository) FindBundleByID(ctx context.Context, id uuid.UUID) (*models.Bundle, error) {
	var bundle models.Bundle
	if err := r.DB(ctx).First(&bundle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bundle, nil
}

// ListActiveProducts returns storefront-visible products for an event.
func (r *Repository) ListActiveProducts(ctx context.Context, eventID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.DB(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// ListActiveServices returns storefront-visible services for an event.
func (r *Repository) ListActiveServices(ctx context.Context, eventID uuid.UUID) ([]models.ServiceOffering, error) {
	var services []models.ServiceOffering
	err := r.DB(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

// ListActiveAddons returns storefront-visible addons for an event.
func (r *Repository) ListActiveAddons(ctx context.Context, eventID uuid.UUID) ([]models.Addon, error) {
	var addons []models.Addon
	err := r.DB(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at DESC").
		Find(&addons).Error
	return addons, err
}

// ListActiveBundles returns storefront-visible bundles for an event.
func (r *Repository) ListActiveBundles(ctx context.Context, eventID uuid.UUID) ([]models.Bundle, error) {
	var bundles []models.Bundle
	err := r.DB(ctx).
		Where("event_id = ? AND is_active = ?", eventID, true).
		Order("created_at DESC").
		Find(&bundles).Error
	return bundles, err
}
