package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/api/responses"
	"github.com/giftnest/giftnest-backend/api/validators"
	"github.com/giftnest/giftnest-backend/internal/checkout"
	"github.com/giftnest/giftnest-backend/internal/orders"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/logger"
)

// AdminOrdersController is the fulfillment staff surface: list orders, move
// them through the status lifecycle, and produce the WhatsApp handoff.
type AdminOrdersController struct {
	orders    orders.Service
	formatter *checkout.Formatter
	logg      *logger.Logger
}

func NewAdminOrdersController(ordersSvc orders.Service, formatter *checkout.Formatter, logg *logger.Logger) *AdminOrdersController {
	return &AdminOrdersController{orders: ordersSvc, formatter: formatter, logg: logg}
}

func (c *AdminOrdersController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := validators.ParseQueryInt(r, "limit", 25, 1, 100)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 100000)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	filters := orders.ListFilters{Limit: limit, Offset: offset}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, err := enums.ParseOrderStatus(raw)
		if err != nil {
			responses.WriteError(ctx, c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").WithDetails(map[string]any{"status": raw}))
			return
		}
		filters.Status = &status
	}

	list, err := c.orders.List(ctx, filters)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, list)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (c *AdminOrdersController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responses.WriteError(ctx, c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id must be a valid id"))
		return
	}

	var req updateStatusRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	status, err := enums.ParseOrderStatus(req.Status)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").WithDetails(map[string]any{"status": req.Status}))
		return
	}

	order, err := c.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	if c.logg != nil {
		logCtx := c.logg.WithFields(ctx, map[string]any{"order_number": order.OrderNumber, "status": string(order.Status)})
		c.logg.Info(logCtx, "order.status_updated")
	}

	responses.WriteSuccess(w, order)
}

// Handoff renders the stored order into the WhatsApp message and deep link
// handed to the operator. Totals come straight from the record.
func (c *AdminOrdersController) Handoff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderNumber := strings.TrimSpace(chi.URLParam(r, "orderNumber"))
	order, err := c.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, map[string]any{
		"orderId": order.OrderNumber,
		"message": c.formatter.FormatHandoff(order),
		"link":    c.formatter.HandoffLink(order),
	})
}
