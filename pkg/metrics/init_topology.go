package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTopologyMetrics() {
	r.TopologyNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "resilience_topology_nodes_total",
			Help: "Number of nodes in the current topology",
		},
	)

	r.TopologyEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "resilience_topology_edges_total",
			Help: "Number of edges in the current topology",
		},
	)

	r.TopologyEdgeToggles = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "resilience_topology_edge_toggles_total",
			Help: "Total number of edge failure toggles",
		},
	)

	r.TopologyResets = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "resilience_topology_resets_total",
			Help: "Total number of topology resets",
		},
	)

	r.TopologyLoads = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "resilience_topology_loads_total",
			Help: "Total number of topology load attempts",
		},
		[]string{"status"},
	)
}
