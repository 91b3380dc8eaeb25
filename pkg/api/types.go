package api

import "time"

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Loaded    bool      `json:"topologyLoaded"`
}

// ErrorResponse is the envelope for every non-2xx reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NodeDTO is the wire form of a node, derived annotations included
type NodeDTO struct {
	ID                  string  `json:"id"`
	Label               string  `json:"label"`
	X                   float64 `json:"x"`
	Y                   float64 `json:"y"`
	Kind                string  `json:"kind"`
	IsArticulationPoint bool    `json:"isArticulationPoint"`
}

// EdgeDTO is the wire form of an edge
type EdgeDTO struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Active     bool   `json:"active"`
	IsBridge   bool   `json:"isBridge"`
	IsRecovery bool   `json:"isRecovery"`
}

// TopologyResponse is returned by GET /topology
type TopologyResponse struct {
	Nodes []NodeDTO `json:"nodes"`
	Edges []EdgeDTO `json:"edges"`
}

// LoadResponse is returned by POST /topology
type LoadResponse struct {
	NodeCount int `json:"nodeCount"`
	EdgeCount int `json:"edgeCount"`
}

// ToggleRequest flips the failure flag of one edge
type ToggleRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ToggleResponse reports the toggle outcome
type ToggleResponse struct {
	Toggled bool `json:"toggled"`
}

// CriticalStructuresResponse is returned by POST /analyze/critical-structures
type CriticalStructuresResponse struct {
	Bridges            []EdgeRefDTO `json:"bridges"`
	ArticulationPoints []string     `json:"articulationPoints"`
	Trace              []string     `json:"trace"`
	Time               string       `json:"time"`
}

// EdgeRefDTO names an undirected edge by its endpoints
type EdgeRefDTO struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ShortestPathRequest asks for a minimum-hop route
type ShortestPathRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ShortestPathResponse is returned by POST /analyze/shortest-path
type ShortestPathResponse struct {
	Found bool     `json:"found"`
	Path  []string `json:"path,omitempty"`
	Hops  int      `json:"hops"`
	Trace []string `json:"trace"`
	Time  string   `json:"time"`
}

// RecoveryPlanRequest asks for a repair plan. Apply installs the planned
// edges on the live topology.
type RecoveryPlanRequest struct {
	HubID string `json:"hubId,omitempty"`
	Apply bool   `json:"apply,omitempty"`
}

// RecoveryPlanResponse is returned by POST /analyze/recovery-plan
type RecoveryPlanResponse struct {
	Hub               string    `json:"hub"`
	DisconnectedNodes []string  `json:"disconnectedNodes"`
	RecoveryEdges     []EdgeDTO `json:"recoveryEdges"`
	Applied           bool      `json:"applied"`
	Trace             []string  `json:"trace"`
	Time              string    `json:"time"`
}

// ComponentDTO is one connected piece of the active graph
type ComponentDTO struct {
	ID    int      `json:"id"`
	Nodes []string `json:"nodes"`
	Size  int      `json:"size"`
}

// ComponentsResponse is returned by GET /analyze/components
type ComponentsResponse struct {
	Components []ComponentDTO `json:"components"`
	Count      int            `json:"count"`
}
