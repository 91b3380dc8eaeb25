package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "resilience_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"algorithm", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resilience_analysis_duration_seconds",
			Help:    "Analysis execution duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"algorithm"},
	)

	r.AnalysisNodesVisited = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resilience_analysis_nodes_visited",
			Help:    "Number of nodes visited per analysis run",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"algorithm"},
	)

	r.BridgesFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resilience_bridges_found",
			Help:    "Number of bridges found per critical-structure run",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100},
		},
	)

	r.ArticulationsFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resilience_articulation_points_found",
			Help:    "Number of articulation points found per critical-structure run",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100},
		},
	)

	r.RecoveryEdgesProposed = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resilience_recovery_edges_proposed",
			Help:    "Number of synthetic edges proposed per recovery plan",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100},
		},
	)
}
