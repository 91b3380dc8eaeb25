package metrics

import (
	"runtime"
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAnalysis records an analysis run
func (r *Registry) RecordAnalysis(algorithm, status string, duration time.Duration, nodesVisited int) {
	r.AnalysesTotal.WithLabelValues(algorithm, status).Inc()
	r.AnalysisDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.AnalysisNodesVisited.WithLabelValues(algorithm).Observe(float64(nodesVisited))
}

// RecordCriticalStructures records the findings of a critical-structure run
func (r *Registry) RecordCriticalStructures(bridges, articulationPoints int) {
	r.BridgesFound.Observe(float64(bridges))
	r.ArticulationsFound.Observe(float64(articulationPoints))
}

// RecordRecoveryPlan records the size of a recovery plan
func (r *Registry) RecordRecoveryPlan(recoveryEdges int) {
	r.RecoveryEdgesProposed.Observe(float64(recoveryEdges))
}

// SetTopologySize updates the topology gauges after a load, toggle, or reset
func (r *Registry) SetTopologySize(nodes, edges int) {
	r.TopologyNodesTotal.Set(float64(nodes))
	r.TopologyEdgesTotal.Set(float64(edges))
}

// UpdateSystemMetrics refreshes the runtime gauges
func (r *Registry) UpdateSystemMetrics(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.UptimeSeconds.Set(time.Since(startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}
