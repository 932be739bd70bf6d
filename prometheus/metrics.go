package prometheus

import (
	"sync"
	"time"

	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Product metrics
	ProductOperationsCounter *prometheus.CounterVec

	// Order metrics
	OrderOperationsCounter *prometheus.CounterVec
	OrderTotalHistogram    prometheus.Histogram

	// Seeding metrics
	SeededProductsCounter prometheus.Counter

	initOnce sync.Once
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	initOnce.Do(func() {
		// Use metric prefix from configuration
		prefix := cfg.Metrics.Prefix

		HttpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HttpRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		DbOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		)

		ProductOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_product_operations_total",
				Help: "Total number of product operations",
			},
			[]string{"operation"},
		)

		OrderOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_order_operations_total",
				Help: "Total number of order operations",
			},
			[]string{"operation"},
		)

		OrderTotalHistogram = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_order_total_value",
				Help:    "Distribution of computed order totals",
				Buckets: []float64{5, 10, 25, 50, 100, 250, 500},
			},
		)

		SeededProductsCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_seeded_products_total",
				Help: "Total number of products inserted by startup seeding",
			},
		)
	})
}

// TrackDBOperation returns a function that records the duration of a database
// operation. Safe to call before InitMetrics; it then records nothing.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	if ProductOperationsCounter == nil {
		return
	}
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordOrderOperation increments the counter for order operations
func RecordOrderOperation(operation string) {
	if OrderOperationsCounter == nil {
		return
	}
	OrderOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordOrderTotal observes a computed order total
func RecordOrderTotal(total float64) {
	if OrderTotalHistogram == nil {
		return
	}
	OrderTotalHistogram.Observe(total)
}

// RecordSeededProduct increments the seeded product counter
func RecordSeededProduct() {
	if SeededProductsCounter == nil {
		return
	}
	SeededProductsCounter.Inc()
}
