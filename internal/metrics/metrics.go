package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the API
type Metrics struct {
	// HTTP traffic by route template
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Crime-cluster pipeline
	ClusterOutcome *prometheus.CounterVec
	ClusterBuckets prometheus.Histogram

	// Store round trips by query name
	StoreLatency *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "putusan_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "putusan_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		ClusterOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "putusan_crime_cluster_outcomes_total",
			Help: "Crime-cluster requests by outcome",
		}, []string{"outcome"}), // outcome: "ok", "not_found", "invalid", "error"

		ClusterBuckets: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "putusan_crime_cluster_buckets",
			Help:    "Number of buckets clustered per request",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 40, 80, 160, 320, 640},
		}),

		StoreLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "putusan_store_query_duration_seconds",
			Help:    "Duration of store queries by query name",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"query"}),
	}
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(method, route, status).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

// IncrementClusterOutcome records the outcome of a crime-cluster request
func (m *Metrics) IncrementClusterOutcome(outcome string) {
	if m != nil {
		m.ClusterOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveClusterBuckets records how many buckets were clustered
func (m *Metrics) ObserveClusterBuckets(n int) {
	if m != nil {
		m.ClusterBuckets.Observe(float64(n))
	}
}

// ObserveStoreLatency records the duration of a store query
func (m *Metrics) ObserveStoreLatency(query string, d time.Duration) {
	if m != nil {
		m.StoreLatency.WithLabelValues(query).Observe(d.Seconds())
	}
}
