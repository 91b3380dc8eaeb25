// Package topology holds the network topology model: nodes, links, their
// active/failed status, and the derived annotations produced by the analysis
// engine. The graph here is the ground truth the failure simulator mutates;
// the analysis packages only ever receive snapshots of it.
package topology

// NodeID is the stable handle callers use to reference a node.
type NodeID string

// Kind classifies a node in the telecom topology.
type Kind string

const (
	KindCity     Kind = "city"
	KindBarangay Kind = "barangay"
	KindHub      Kind = "hub"
)

// Position is a 2D canvas coordinate. Only the recovery planner's distance
// metric reads it; the graph-theoretic algorithms never do.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is a site in the network.
type Node struct {
	ID       NodeID
	Label    string
	Position Position
	Kind     Kind

	// IsArticulationPoint is a derived annotation. It is cleared on reset
	// and recomputed from analysis results; it is never persisted.
	IsArticulationPoint bool
}

// Edge is an undirected link. Source/Target ordering is storage order only:
// (u,v) and (v,u) denote the same link, and parallel edges between the same
// pair are allowed and traversed independently.
type Edge struct {
	Source NodeID
	Target NodeID

	// Active is the failure flag; false means the link is down.
	Active bool

	// IsBridge is a derived annotation, never persisted.
	IsBridge bool

	// IsRecovery marks a synthetic edge produced by the recovery planner.
	// The user never sets it.
	IsRecovery bool
}

// Connects reports whether the edge joins the unordered pair {u, v}.
func (e *Edge) Connects(u, v NodeID) bool {
	return (e.Source == u && e.Target == v) || (e.Source == v && e.Target == u)
}

// EdgeRef identifies an undirected edge by its endpoints, independent of
// storage order.
type EdgeRef struct {
	Source NodeID `json:"source"`
	Target NodeID `json:"target"`
}

// Matches reports whether the reference names the same unordered pair as e.
func (r EdgeRef) Matches(e *Edge) bool {
	return e.Connects(r.Source, r.Target)
}

// Graph is a set of nodes and undirected edges. Every edge endpoint
// references an existing node id; BuildGraph enforces this at construction.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	byID map[NodeID]*Node
}

// NodeSpec is the persisted form of a node. Derived annotations are never
// part of it.
type NodeSpec struct {
	ID    string  `json:"id" yaml:"id" validate:"required,max=64"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Kind  string  `json:"kind" yaml:"kind" validate:"required,oneof=city barangay hub"`
}

// EdgeSpec is the persisted form of an edge. IsActive defaults to true when
// omitted.
type EdgeSpec struct {
	Source   string `json:"source" yaml:"source" validate:"required,max=64"`
	Target   string `json:"target" yaml:"target" validate:"required,max=64"`
	IsActive *bool  `json:"isActive,omitempty" yaml:"isActive,omitempty"`
}

// TopologySpec is the on-disk/over-the-wire record a topology is loaded
// from: nodes with positions and kinds, edges with their failure flags.
type TopologySpec struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
	Edges []EdgeSpec `json:"edges" yaml:"edges" validate:"omitempty,dive"`
}
