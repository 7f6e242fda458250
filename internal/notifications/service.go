package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Service is the operational feed: the order pipeline writes into it
// best-effort and fulfillment staff read from it.
type Service interface {
	OrderCreated(ctx context.Context, order *models.Order) error
	OrderStatusChanged(ctx context.Context, order *models.Order, previous enums.OrderStatus) error
	List(ctx context.Context, filters ListFilters) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
}

// ListFilters narrows the feed query.
type ListFilters struct {
	Limit      int
	UnreadOnly bool
	Kind       *enums.NotificationKind
}

type service struct {
	repo    *Repository
	printer *message.Printer
}

// NewService wires the notifications feed.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	return &service{
		repo:    repo,
		printer: message.NewPrinter(language.English),
	}, nil
}

func (s *service) OrderCreated(ctx context.Context, order *models.Order) error {
	if order == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order required")
	}
	orderID := order.ID
	return s.repo.Create(ctx, &models.Notification{
		Kind:    enums.NotificationKindOrderCreated,
		OrderID: &orderID,
		Message: s.printer.Sprintf("New order %s from %s — ₦%d total", order.OrderNumber, order.CustomerName, order.TotalAmount),
	})
}

func (s *service) OrderStatusChanged(ctx context.Context, order *models.Order, previous enums.OrderStatus) error {
	if order == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order required")
	}
	orderID := order.ID
	return s.repo.Create(ctx, &models.Notification{
		Kind:    enums.NotificationKindOrderStatusChanged,
		OrderID: &orderID,
		Message: fmt.Sprintf("Order %s moved %s -> %s", order.OrderNumber, previous, order.Status),
	})
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Notification, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list notifications")
	}
	return rows, nil
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notification read")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notifications read")
	}
	return count, nil
}
