package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes storefront browse reads over the catalog.
type Service interface {
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context, eventID uuid.UUID) ([]models.Product, error)
	ListServices(ctx context.Context, eventID uuid.UUID) ([]models.ServiceOffering, error)
	ListAddons(ctx context.Context, eventID uuid.UUID) ([]models.Addon, error)
	ListBundles(ctx context.Context, eventID uuid.UUID) ([]models.Bundle, error)
}

type service struct {
	repo *Repository
}

// NewService builds the catalog read service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug required")
	}
	product, err := s.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) ListProducts(ctx context.Context, eventID uuid.UUID) ([]models.Product, error) {
	if eventID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	products, err := s.repo.ListActiveProducts(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

func (s *service) ListServices(ctx context.Context, eventID uuid.UUID) ([]models.ServiceOffering, error) {
	if eventID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	services, err := s.repo.ListActiveServices(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list services")
	}
	return services, nil
}

func (s *service) ListAddons(ctx context.Context, eventID uuid.UUID) ([]models.Addon, error) {
	if eventID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	addons, err := s.repo.ListActiveAddons(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list addons")
	}
	return addons, nil
}

func (s *service) ListBundles(ctx context.Context, eventID uuid.UUID) ([]models.Bundle, error) {
	if eventID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	bundles, err := s.repo.ListActiveBundles(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bundles")
	}
	return bundles, nil
}
