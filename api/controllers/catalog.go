package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/api/responses"
	"github.com/giftnest/giftnest-backend/internal/catalog"
	"github.com/giftnest/giftnest-backend/internal/events"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/giftnest/giftnest-backend/pkg/logger"
)

// CatalogController serves the read-only storefront browse surface. Listings
// are scoped to a seasonal event: an explicit eventId query parameter wins,
// otherwise the currently active event is used.
type CatalogController struct {
	catalog catalog.Service
	events  events.Service
	logg    *logger.Logger
}

func NewCatalogController(catalogSvc catalog.Service, eventsSvc events.Service, logg *logger.Logger) *CatalogController {
	return &CatalogController{catalog: catalogSvc, events: eventsSvc, logg: logg}
}

func (c *CatalogController) eventScope(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("eventId"))
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "eventId must be a valid id")
		}
		return id, nil
	}
	event, err := c.events.GetActive(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return event.ID, nil
}

func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	eventID, err := c.eventScope(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	products, err := c.catalog.ListProducts(r.Context(), eventID)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, products)
}

func (c *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	eventID, err := c.eventScope(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	services, err := c.catalog.ListServices(r.Context(), eventID)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, services)
}

func (c *CatalogController) ListAddons(w http.ResponseWriter, r *http.Request) {
	eventID, err := c.eventScope(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	addons, err := c.catalog.ListAddons(r.Context(), eventID)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, addons)
}

func (c *CatalogController) ListBundles(w http.ResponseWriter, r *http.Request) {
	eventID, err := c.eventScope(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	bundles, err := c.catalog.ListBundles(r.Context(), eventID)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, bundles)
}

func (c *CatalogController) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	product, err := c.catalog.GetProductBySlug(r.Context(), slug)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, product)
}
