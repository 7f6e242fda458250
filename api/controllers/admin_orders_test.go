package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/internal/checkout"
	internalorders "github.com/giftnest/giftnest-backend/internal/orders"
	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
)

func adminRouter(svc internalorders.Service) http.Handler {
	ctrl := NewAdminOrdersController(svc, checkout.NewFormatter("2348000000000"), nil)
	r := chi.NewRouter()
	r.Get("/orders", ctrl.List)
	r.Patch("/orders/{id}/status", ctrl.UpdateStatus)
	r.Get("/orders/{orderNumber}/handoff", ctrl.Handoff)
	return r
}

func TestAdminOrdersListStatusFilter(t *testing.T) {
	svc := stubOrdersService{
		listFn: func(ctx context.Context, filters internalorders.ListFilters) ([]models.Order, error) {
			if filters.Status == nil || *filters.Status != enums.OrderStatusPending {
				t.Fatalf("unexpected filters %+v", filters)
			}
			if filters.Limit != 5 {
				t.Fatalf("unexpected limit %d", filters.Limit)
			}
			return []models.Order{{OrderNumber: "GFT-K7M2P4QX"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders?status=PENDING&limit=5", nil)
	rec := httptest.NewRecorder()
	adminRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminOrdersListRejectsUnknownStatus(t *testing.T) {
	svc := stubOrdersService{
		listFn: func(ctx context.Context, filters internalorders.ListFilters) ([]models.Order, error) {
			t.Fatal("service must not be reached")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders?status=SHIPPING", nil)
	rec := httptest.NewRecorder()
	adminRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminOrdersUpdateStatus(t *testing.T) {
	orderID := uuid.New()
	svc := stubOrdersService{
		updateFn: func(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*models.Order, error) {
			if id != orderID {
				t.Fatalf("unexpected id %s", id)
			}
			if status != enums.OrderStatusConfirmed {
				t.Fatalf("unexpected status %s", status)
			}
			return &models.Order{ID: orderID, OrderNumber: "GFT-K7M2P4QX", Status: status}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"CONFIRMED"}`))
	rec := httptest.NewRecorder()
	adminRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminOrdersUpdateStatusStateConflict(t *testing.T) {
	orderID := uuid.New()
	svc := stubOrdersService{
		updateFn: func(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*models.Order, error) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot move DELIVERED to PENDING")
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"PENDING"}`))
	rec := httptest.NewRecorder()
	adminRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAdminOrdersHandoffEchoesStoredTotals(t *testing.T) {
	svc := stubOrdersService{
		getFn: func(ctx context.Context, orderNumber string) (*models.Order, error) {
			return &models.Order{
				OrderNumber:   orderNumber,
				CustomerName:  "Adaeze Obi",
				CustomerPhone: "08012345678",
				Address:       "14 Admiralty Way",
				City:          "Lagos",
				SubTotal:      42000,
				ServiceFee:    2500,
				TotalAmount:   44500,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/GFT-K7M2P4QX/handoff", nil)
	rec := httptest.NewRecorder()
	adminRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data struct {
			OrderID string `json:"orderId"`
			Message string `json:"message"`
			Link    string `json:"link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data.OrderID != "GFT-K7M2P4QX" {
		t.Fatalf("unexpected order id %q", payload.Data.OrderID)
	}
	if !strings.Contains(payload.Data.Message, "Total: ₦44,500") {
		t.Fatalf("message must echo stored total: %s", payload.Data.Message)
	}
	if !strings.HasPrefix(payload.Data.Link, "https://wa.me/2348000000000?text=") {
		t.Fatalf("unexpected link %q", payload.Data.Link)
	}
}
