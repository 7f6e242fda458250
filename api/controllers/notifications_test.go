package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/internal/notifications"
	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
)

type stubNotificationsService struct {
	listFn        func(ctx context.Context, filters notifications.ListFilters) ([]models.Notification, error)
	markReadFn    func(ctx context.Context, id uuid.UUID) error
	markAllReadFn func(ctx context.Context) (int64, error)
}

func (s stubNotificationsService) OrderCreated(ctx context.Context, order *models.Order) error {
	return nil
}

func (s stubNotificationsService) OrderStatusChanged(ctx context.Context, order *models.Order, previous enums.OrderStatus) error {
	return nil
}

func (s stubNotificationsService) List(ctx context.Context, filters notifications.ListFilters) ([]models.Notification, error) {
	return s.listFn(ctx, filters)
}

func (s stubNotificationsService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.markReadFn(ctx, id)
}

func (s stubNotificationsService) MarkAllRead(ctx context.Context) (int64, error) {
	return s.markAllReadFn(ctx)
}

func notificationsRouter(svc notifications.Service) http.Handler {
	ctrl := NewNotificationsController(svc, nil)
	r := chi.NewRouter()
	r.Get("/notifications", ctrl.List)
	r.Patch("/notifications/{id}/read", ctrl.MarkRead)
	r.Patch("/notifications/read-all", ctrl.MarkAllRead)
	return r
}

func TestNotificationsListPassesQueryFilters(t *testing.T) {
	svc := stubNotificationsService{
		listFn: func(ctx context.Context, filters notifications.ListFilters) ([]models.Notification, error) {
			if filters.Limit != 10 {
				t.Fatalf("unexpected limit %d", filters.Limit)
			}
			if !filters.UnreadOnly {
				t.Fatal("expected unreadOnly=true")
			}
			if filters.Kind == nil || *filters.Kind != enums.NotificationKindOrderCreated {
				t.Fatalf("unexpected kind filter %v", filters.Kind)
			}
			return []models.Notification{{Message: "new order"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/notifications?limit=10&unread=true&kind=order_created", nil)
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNotificationsListRejectsUnknownKind(t *testing.T) {
	svc := stubNotificationsService{
		listFn: func(ctx context.Context, filters notifications.ListFilters) ([]models.Notification, error) {
			t.Fatal("service must not be reached")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/notifications?kind=order_refunded", nil)
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNotificationsMarkReadNotFound(t *testing.T) {
	svc := stubNotificationsService{
		markReadFn: func(ctx context.Context, id uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/notifications/"+uuid.NewString()+"/read", nil)
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNotificationsMarkReadRejectsBadID(t *testing.T) {
	svc := stubNotificationsService{
		markReadFn: func(ctx context.Context, id uuid.UUID) error {
			t.Fatal("service must not be reached")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/notifications/not-an-id/read", nil)
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNotificationsMarkAllRead(t *testing.T) {
	svc := stubNotificationsService{
		markAllReadFn: func(ctx context.Context) (int64, error) {
			return 4, nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/notifications/read-all", nil)
	rec := httptest.NewRecorder()
	notificationsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
