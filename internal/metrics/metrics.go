// Package metrics provides Prometheus metrics for the cargo pack service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OptimizationsTotal counts optimization runs by algorithm and outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_optimizations_total",
			Help: "Total number of optimization runs",
		},
		[]string{"algorithm", "status"},
	)

	// OptimizationDuration tracks how long each algorithm takes.
	OptimizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cargo_optimization_duration_seconds",
			Help:    "Optimization run duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"algorithm"},
	)

	// OptimizationUtilization tracks achieved volume utilization in percent.
	OptimizationUtilization = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cargo_optimization_utilization_percent",
			Help:    "Container volume utilization achieved per run",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"algorithm"},
	)

	// UnplacedInstancesTotal counts instances that could not be loaded.
	UnplacedInstancesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_unplaced_instances_total",
			Help: "Total number of item instances left unplaced",
		},
		[]string{"algorithm"},
	)

	// GeneticGenerationsTotal counts evaluated genetic generations.
	GeneticGenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cargo_genetic_generations_total",
			Help: "Total number of genetic generations evaluated",
		},
	)

	// ActiveStreams tracks open progress streams.
	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cargo_progress_streams_active",
			Help: "Number of open optimization progress streams",
		},
	)

	// AdvisorRequestsTotal counts advisory lookups by outcome.
	AdvisorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_advisor_requests_total",
			Help: "Total number of algorithm advisor requests",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState exposes each breaker's state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state by name",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Handler panics turned into 500 responses",
		},
		[]string{"path"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOptimization records a successful run.
func RecordOptimization(algorithm string, duration time.Duration, utilization float64, unplaced int) {
	OptimizationsTotal.WithLabelValues(algorithm, "success").Inc()
	OptimizationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	OptimizationUtilization.WithLabelValues(algorithm).Observe(utilization)
	if unplaced > 0 {
		UnplacedInstancesTotal.WithLabelValues(algorithm).Add(float64(unplaced))
	}
}

// RecordOptimizationError records a run rejected before or during packing.
func RecordOptimizationError(algorithm string) {
	OptimizationsTotal.WithLabelValues(algorithm, "error").Inc()
}

// RecordGeneration records one evaluated genetic generation.
func RecordGeneration() {
	GeneticGenerationsTotal.Inc()
}

// RecordAdvisorRequest records the outcome of an advisor lookup
// ("accepted", "low_confidence", "unknown_algorithm", "error", "circuit_open").
func RecordAdvisorRequest(outcome string) {
	AdvisorRequestsTotal.WithLabelValues(outcome).Inc()
}

// SetCircuitBreakerState publishes the state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordPanic counts a recovered handler panic by route.
func RecordPanic(path string) {
	PanicsRecoveredTotal.WithLabelValues(path).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
