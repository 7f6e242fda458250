package orders

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/logger"
	"github.com/giftnest/giftnest-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftnest/giftnest-backend/internal/pricing"
)

// Service is the order assembler: it validates a submission, resolves and
// prices the cart, and persists the immutable order record.
type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	List(ctx context.Context, filters ListFilters) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*models.Order, error)
}

// ServiceParams collects the assembler's dependencies. Notifier, Metrics and
// Logger are optional.
type ServiceParams struct {
	Resolver    *Resolver
	Repo        Repository
	Tx          txRunner
	Events      eventLoader
	Notifier    Notifier
	Metrics     *metrics.OrderMetrics
	Logger      *logger.Logger
	OrderPrefix string
}

type service struct {
	resolver    *Resolver
	repo        Repository
	tx          txRunner
	events      eventLoader
	notifier    Notifier
	metrics     *metrics.OrderMetrics
	logg        *logger.Logger
	orderPrefix string
}

// NewService builds the order assembler.
func NewService(params ServiceParams) (Service, error) {
	if params.Resolver == nil {
		return nil, fmt.Errorf("resolver required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	prefix := params.OrderPrefix
	if prefix == "" {
		prefix = "GFT"
	}
	return &service{
		resolver:    params.Resolver,
		repo:        params.Repo,
		tx:          params.Tx,
		events:      params.Events,
		notifier:    params.Notifier,
		metrics:     params.Metrics,
		logg:        params.Logger,
		orderPrefix: prefix,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if err := validateCustomer(req.Customer); err != nil {
		s.metrics.IncFailed("validation")
		return nil, err
	}
	if len(req.Items) == 0 {
		s.metrics.IncFailed("validation")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		s.metrics.IncFailed("validation")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id must be a valid identifier")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.metrics.IncFailed("event")
		return nil, err
	}
	if !event.IsActive {
		s.metrics.IncFailed("event")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("event %q is not accepting orders", event.Slug))
	}

	resolved, err := s.resolver.ResolveAll(ctx, req.Items)
	if err != nil {
		s.metrics.IncFailed("resolution")
		return nil, err
	}

	lineTotals := make([]int, len(resolved))
	for i, item := range resolved {
		lineTotals[i] = item.LineTotal
	}
	quote := pricing.Price(lineTotals)

	order := buildOrder(event.ID, NewOrderNumber(s.orderPrefix), req.Customer, resolved, quote)

	// Nothing is written until every line resolved and pricing is final;
	// a caller abort before this point leaves no trace.
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).Create(ctx, order)
		return err
	})
	if err != nil {
		s.metrics.IncFailed("persistence")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	s.metrics.ObserveCreated(event.Slug, order.TotalAmount, order.ServiceFee)
	s.notifyCreated(ctx, order)

	return order, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	resolved, err := s.resolver.ResolveAll(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	lineTotals := make([]int, len(resolved))
	for i, item := range resolved {
		lineTotals[i] = item.LineTotal
	}

	return &QuoteResult{
		Items: resolved,
		Quote: pricing.Price(lineTotals),
	}, nil
}

func (s *service) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %q not found", orderNumber))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Order, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	orders, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown status %q", status))
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	previous := order.Status
	if previous == status {
		return order, nil
	}
	if !previous.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("cannot move order from %s to %s", previous, status)).
			WithDetails(map[string]string{"from": previous.String(), "to": status.String()})
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	order.Status = status

	if s.notifier != nil {
		if err := s.notifier.OrderStatusChanged(ctx, order, previous); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithOrderNumber(ctx, order.OrderNumber), "status notification failed")
		}
	}

	return order, nil
}

func (s *service) notifyCreated(ctx context.Context, order *models.Order) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.OrderCreated(ctx, order); err != nil && s.logg != nil {
		ctx = s.logg.WithOrderNumber(ctx, order.OrderNumber)
		s.logg.Warn(ctx, "order notification failed")
	}
}

func validateCustomer(customer CustomerInput) error {
	issues := map[string]string{}
	if len(strings.TrimSpace(customer.Name)) < 2 {
		issues["name"] = "must be at least 2 characters"
	}
	if len(strings.TrimSpace(customer.Phone)) < 10 {
		issues["phone"] = "must be at least 10 characters"
	}
	if len(strings.TrimSpace(customer.Address)) < 5 {
		issues["address"] = "must be at least 5 characters"
	}
	if strings.TrimSpace(customer.City) == "" {
		issues["city"] = "is required"
	}
	if customer.Email != "" {
		if _, err := mail.ParseAddress(customer.Email); err != nil {
			issues["email"] = "must be a valid email"
		}
	}
	if len(issues) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid customer details").WithDetails(issues)
	}
	return nil
}

func buildOrder(eventID uuid.UUID, orderNumber string, customer CustomerInput, resolved []ResolvedLineItem, quote pricing.Quote) *models.Order {
	items := make([]models.OrderLineItem, len(resolved))
	for i, item := range resolved {
		items[i] = models.OrderLineItem{
			Position:         i,
			LineType:         item.LineType,
			ReferenceID:      item.ReferenceID,
			Name:             item.Name,
			Qty:              item.Qty,
			UnitPrice:        item.UnitPrice,
			LineTotal:        item.LineTotal,
			VariantSelection: item.VariantSelection,
			Customization:    item.Customization,
			BookingDate:      item.BookingDate,
			BookingTime:      item.BookingTime,
		}
	}

	return &models.Order{
		OrderNumber:    orderNumber,
		EventID:        eventID,
		CustomerName:   strings.TrimSpace(customer.Name),
		CustomerEmail:  optional(customer.Email),
		CustomerPhone:  strings.TrimSpace(customer.Phone),
		SecondaryPhone: optional(customer.SecondaryPhone),
		WhatsApp:       optional(customer.WhatsApp),
		Address:        strings.TrimSpace(customer.Address),
		City:           strings.TrimSpace(customer.City),
		CustomMessage:  optional(customer.CustomMessage),
		SubTotal:       quote.SubTotal,
		ServiceFee:     quote.ServiceFee,
		TotalAmount:    quote.TotalAmount,
		Status:         enums.OrderStatusPending,
		Items:          items,
	}
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
