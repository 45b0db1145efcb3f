package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"endpoint", "method", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		},
	)

	checkouts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Name:      "checkouts_total",
			Help:      "Completed checkouts.",
		},
	)

	serviceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lodge",
			Name:      "service_requests_total",
			Help:      "Service requests by type.",
		},
		[]string{"type"},
	)

	invoiceTotals = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lodge",
			Name:      "invoice_total_amount",
			Help:      "Invoice grand totals at checkout.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, checkouts, serviceRequests, invoiceTotals)
	})
}

// IncHTTP increments the request counter for an endpoint label.
func IncHTTP(endpoint, method, status string) {
	httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// IncBookingCreated increments the created bookings counter.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncCheckout increments the completed checkouts counter.
func IncCheckout() {
	checkouts.Inc()
}

// IncServiceRequest increments the service request counter for a type label.
func IncServiceRequest(requestType string) {
	serviceRequests.WithLabelValues(requestType).Inc()
}

// ObserveInvoiceTotal records an invoice grand total.
func ObserveInvoiceTotal(amount float64) {
	invoiceTotals.Observe(amount)
}
