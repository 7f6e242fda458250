package controllers

import (
	"net/http"

	"github.com/giftnest/giftnest-backend/api/responses"
	"github.com/giftnest/giftnest-backend/internal/events"
	"github.com/giftnest/giftnest-backend/pkg/logger"
)

// ActiveEvent returns the seasonal campaign the storefront is currently
// selling against.
func ActiveEvent(svc events.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := svc.GetActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, event)
	}
}
