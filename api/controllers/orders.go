package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/api/responses"
	"github.com/giftnest/giftnest-backend/api/validators"
	"github.com/giftnest/giftnest-backend/internal/orders"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/logger"
)

// createOrderResponse is the checkout contract: the storefront reads the
// shareable order number and the stored total straight off the top level.
type createOrderResponse struct {
	Success     bool     `json:"success"`
	Order       orderRef `json:"order"`
	TotalAmount int      `json:"totalAmount"`
}

type orderRef struct {
	OrderNumber string    `json:"orderId"`
	ID          uuid.UUID `json:"_id"`
}

// CreateOrder resolves, prices and persists a cart submission.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req orders.CreateOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Create(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithOrderNumber(ctx, order.OrderNumber), "order.created")
		}

		responses.WriteJSON(w, http.StatusCreated, createOrderResponse{
			Success:     true,
			Order:       orderRef{OrderNumber: order.OrderNumber, ID: order.ID},
			TotalAmount: order.TotalAmount,
		})
	}
}

// QuoteOrder prices a cart without persisting anything, so the checkout UI
// previews exactly the totals order creation would store.
func QuoteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req orders.QuoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quote, err := svc.Quote(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// GetOrderByNumber returns the immutable order snapshot for the shareable
// number printed on the customer's confirmation.
func GetOrderByNumber(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		orderNumber := strings.TrimSpace(chi.URLParam(r, "orderNumber"))
		if orderNumber == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order number required"))
			return
		}

		order, err := svc.GetByOrderNumber(ctx, orderNumber)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
