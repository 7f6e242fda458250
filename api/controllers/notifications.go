package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/api/responses"
	"github.com/giftnest/giftnest-backend/api/validators"
	"github.com/giftnest/giftnest-backend/internal/notifications"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/logger"
)

// NotificationsController serves the fulfillment operational feed.
type NotificationsController struct {
	svc  notifications.Service
	logg *logger.Logger
}

func NewNotificationsController(svc notifications.Service, logg *logger.Logger) *NotificationsController {
	return &NotificationsController{svc: svc, logg: logg}
}

func (c *NotificationsController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 100)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	unreadOnly, err := validators.ParseQueryBool(r, "unread", false)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	var kind *enums.NotificationKind
	if raw := r.URL.Query().Get("kind"); raw != "" {
		parsed, err := enums.ParseNotificationKind(raw)
		if err != nil {
			responses.WriteError(ctx, c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown notification kind"))
			return
		}
		kind = &parsed
	}

	feed, err := c.svc.List(ctx, notifications.ListFilters{Limit: limit, UnreadOnly: unreadOnly, Kind: kind})
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, feed)
}

func (c *NotificationsController) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		responses.WriteError(ctx, c.logg, w, pkgerrors.New(pkgerrors.CodeValidation, "notification id must be a valid id"))
		return
	}

	if err := c.svc.MarkRead(ctx, id); err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]string{"status": "read"})
}

func (c *NotificationsController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := c.svc.MarkAllRead(ctx)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]int64{"updated": count})
}
