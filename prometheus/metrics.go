package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts remote API calls made by the client with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of remote API requests made by the client",
		},
		[]string{"service", "method", "resource", "status"},
	)

	// RequestDurationHistogram records remote call duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "Duration of remote API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "resource", "status"},
	)

	// TransportErrorCounter counts requests that never produced a response
	TransportErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_transport_errors_total",
			Help: "Total number of remote API requests that failed at the transport level",
		},
		[]string{"service", "resource"},
	)

	// FallbackCounter counts local degradations: seed data installed after a
	// total load failure, or a search served from the in-memory collections
	FallbackCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fallback_activations_total",
			Help: "Total number of local fallback activations by kind (seed, local_search)",
		},
		[]string{"service", "kind"},
	)

	// UnauthorizedCounter counts 401 responses that triggered session teardown
	UnauthorizedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_teardowns_total",
			Help: "Total number of session teardowns forced by unauthorized responses",
		},
		[]string{"service"},
	)
)

// ClientMetrics holds configuration and state for API client metrics collection
type ClientMetrics struct {
	ServiceName string
	initialized bool
}

// NewClientMetrics creates a new metrics collector for the client
func NewClientMetrics(serviceName string) *ClientMetrics {
	m := &ClientMetrics{
		ServiceName: serviceName,
	}
	m.register()
	return m
}

// register registers the prometheus metrics if they haven't been registered already
func (m *ClientMetrics) register() {
	if !m.initialized {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(TransportErrorCounter)
		prometheus.MustRegister(FallbackCounter)
		prometheus.MustRegister(UnauthorizedCounter)
		m.initialized = true
	}
}

// ObserveRequest records one completed remote call
func (m *ClientMetrics) ObserveRequest(method, resource string, status int, duration time.Duration) {
	statusStr := strconv.Itoa(status)
	RequestCounter.WithLabelValues(m.ServiceName, method, resource, statusStr).Inc()
	RequestDurationHistogram.WithLabelValues(m.ServiceName, method, resource, statusStr).Observe(duration.Seconds())
}

// ObserveTransportError records a request that never produced a response
func (m *ClientMetrics) ObserveTransportError(resource string) {
	TransportErrorCounter.WithLabelValues(m.ServiceName, resource).Inc()
}

// ObserveFallback records a local degradation of the given kind
func (m *ClientMetrics) ObserveFallback(kind string) {
	FallbackCounter.WithLabelValues(m.ServiceName, kind).Inc()
}

// ObserveUnauthorized records a forced session teardown
func (m *ClientMetrics) ObserveUnauthorized() {
	UnauthorizedCounter.WithLabelValues(m.ServiceName).Inc()
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
