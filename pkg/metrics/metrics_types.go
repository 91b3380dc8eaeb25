package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Analysis Metrics
	AnalysesTotal         *prometheus.CounterVec
	AnalysisDuration      *prometheus.HistogramVec
	AnalysisNodesVisited  *prometheus.HistogramVec
	BridgesFound          prometheus.Histogram
	ArticulationsFound    prometheus.Histogram
	RecoveryEdgesProposed prometheus.Histogram

	// Topology Metrics
	TopologyNodesTotal  prometheus.Gauge
	TopologyEdgesTotal  prometheus.Gauge
	TopologyEdgeToggles prometheus.Counter
	TopologyResets      prometheus.Counter
	TopologyLoads       *prometheus.CounterVec

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initHTTPMetrics()
	r.initAnalysisMetrics()
	r.initTopologyMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
