package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order pipeline outcomes.
type OrderMetrics struct {
	created    *prometheus.CounterVec
	failed     *prometheus.CounterVec
	orderValue prometheus.Histogram
	serviceFee prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders successfully persisted.",
	}, []string{"event"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Order submissions rejected before persistence.",
	}, []string{"reason"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_total_naira",
		Help:    "Distribution of order totals in naira.",
		Buckets: prometheus.ExponentialBuckets(5000, 2, 10),
	})
	serviceFee := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_service_fee_naira",
		Help:    "Distribution of computed service fees in naira.",
		Buckets: []float64{2500, 3500, 4500, 5500, 6500, 8500, 12500},
	})
	reg.MustRegister(created, failed, orderValue, serviceFee)
	return &OrderMetrics{
		created:    created,
		failed:     failed,
		orderValue: orderValue,
		serviceFee: serviceFee,
	}
}

// ObserveCreated records a persisted order and its totals.
func (m *OrderMetrics) ObserveCreated(eventSlug string, totalAmount, serviceFee int) {
	if m == nil || m.created == nil {
		return
	}
	m.created.WithLabelValues(eventSlug).Inc()
	m.orderValue.Observe(float64(totalAmount))
	m.serviceFee.Observe(float64(serviceFee))
}

// IncFailed counts a rejected submission by failure reason.
func (m *OrderMetrics) IncFailed(reason string) {
	if m == nil || m.failed == nil {
		return
	}
	m.failed.WithLabelValues(reason).Inc()
}
