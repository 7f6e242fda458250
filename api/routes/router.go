package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/giftnest/giftnest-backend/api/controllers"
	"github.com/giftnest/giftnest-backend/api/middleware"
	"github.com/giftnest/giftnest-backend/internal/catalog"
	"github.com/giftnest/giftnest-backend/internal/checkout"
	"github.com/giftnest/giftnest-backend/internal/events"
	"github.com/giftnest/giftnest-backend/internal/notifications"
	"github.com/giftnest/giftnest-backend/internal/orders"
	"github.com/giftnest/giftnest-backend/pkg/config"
	"github.com/giftnest/giftnest-backend/pkg/logger"
	"github.com/giftnest/giftnest-backend/pkg/metrics"
	"github.com/giftnest/giftnest-backend/pkg/redis"
)

// Deps collects everything the router wires together.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            controllers.Pinger
	Redis         *redis.Client
	Catalog       catalog.Service
	Events        events.Service
	Orders        orders.Service
	Notifications notifications.Service
	Formatter     *checkout.Formatter
	Metrics       *prometheus.Registry
	HTTPMetrics   *metrics.HTTPMetrics
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}

	readiness := map[string]controllers.Pinger{"db": deps.DB}
	if deps.Redis != nil {
		readiness["redis"] = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	catalogCtrl := controllers.NewCatalogController(deps.Catalog, deps.Events, logg)
	submitPolicy := middleware.NewOrderRateLimitPolicy(cfg.OrderLimit)
	var limiterStore middleware.RateLimiterStore
	if deps.Redis != nil {
		limiterStore = deps.Redis
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events/active", controllers.ActiveEvent(deps.Events, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", catalogCtrl.ListProducts)
			r.Get("/products/{slug}", catalogCtrl.GetProductBySlug)
			r.Get("/services", catalogCtrl.ListServices)
			r.Get("/addons", catalogCtrl.ListAddons)
			r.Get("/bundles", catalogCtrl.ListBundles)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.OrderRateLimit(submitPolicy, limiterStore, logg)).
				Post("/", controllers.CreateOrder(deps.Orders, logg))
			r.Post("/quote", controllers.QuoteOrder(deps.Orders, logg))
			r.Get("/{orderNumber}", controllers.GetOrderByNumber(deps.Orders, logg))
		})
	})

	adminOrders := controllers.NewAdminOrdersController(deps.Orders, deps.Formatter, logg)
	notificationsCtrl := controllers.NewNotificationsController(deps.Notifications, logg)

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.AdminKey(cfg.Admin.APIKey, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", adminOrders.List)
			r.Patch("/{id}/status", adminOrders.UpdateStatus)
			r.Get("/{orderNumber}/handoff", adminOrders.Handoff)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationsCtrl.List)
			r.Patch("/{id}/read", notificationsCtrl.MarkRead)
			r.Patch("/read-all", notificationsCtrl.MarkAllRead)
		})
	})

	return r
}
