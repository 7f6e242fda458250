package orders

import (
	"context"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogReader is the read-only catalog surface the resolver depends on.
// It is consulted once per cart line and never mutated.
type CatalogReader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*models.ServiceOffering, error)
	FindAddonByID(ctx context.Context, id uuid.UUID) (*models.Addon, error)
	FindAddonBySlug(ctx context.Context, slug string) (*models.Addon, error)
	FindBundleByID(ctx context.Context, id uuid.UUID) (*models.Bundle, error)
}

// Repository defines persistence operations for orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	List(ctx context.Context, filters ListFilters) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
}

// Notifier receives best-effort operational events. Implementations must be
// safe to fail: errors are logged by the caller and never surfaced.
type Notifier interface {
	OrderCreated(ctx context.Context, order *models.Order) error
	OrderStatusChanged(ctx context.Context, order *models.Order, previous enums.OrderStatus) error
}
