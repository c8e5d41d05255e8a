// Package metrics defines the Prometheus collectors for the employee API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store operation outcomes used as label values.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the collectors describing HTTP traffic and store activity.
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	StoreOperations        *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec
	EmployeesStored        prometheus.Gauge
	EmployeesCreated       prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Passing a fresh prometheus.NewRegistry keeps tests isolated from the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		HTTPRequestsInFlight: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
		StoreOperations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_store_operations_total",
			Help: "Total number of employee store operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		StoreOperationDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_store_operation_duration_seconds",
			Help:    "Duration of employee store operations.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"operation"}),
		EmployeesStored: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employee_store_records",
			Help: "Number of employee records currently held.",
		}),
		EmployeesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employee_store_created_total",
			Help: "Total number of employees created since start.",
		}),
	}

	return m
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveOperation records a finished store operation.
func (m *Metrics) ObserveOperation(operation, outcome string, seconds float64) {
	m.StoreOperations.WithLabelValues(operation, outcome).Inc()
	m.StoreOperationDuration.WithLabelValues(operation).Observe(seconds)
}
