package topology

import "fmt"

// InvalidNodeError reports an edge or a query referencing a node id that is
// not part of the graph.
type InvalidNodeError struct {
	ID NodeID
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("node %q is not part of the topology", string(e.ID))
}

// BuildGraph constructs a Graph from persisted specs. Every edge endpoint
// must reference a declared node; a dangling reference yields
// *InvalidNodeError. Node order is preserved: algorithms that start "at the
// first node" start at nodes[0].
func BuildGraph(nodes []NodeSpec, edges []EdgeSpec) (*Graph, error) {
	g := &Graph{
		Nodes: make([]*Node, 0, len(nodes)),
		Edges: make([]*Edge, 0, len(edges)),
		byID:  make(map[NodeID]*Node, len(nodes)),
	}

	for _, ns := range nodes {
		n := &Node{
			ID:       NodeID(ns.ID),
			Label:    ns.Label,
			Position: Position{X: ns.X, Y: ns.Y},
			Kind:     Kind(ns.Kind),
		}
		if n.Label == "" {
			n.Label = ns.ID
		}
		if _, dup := g.byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", ns.ID)
		}
		g.Nodes = append(g.Nodes, n)
		g.byID[n.ID] = n
	}

	for _, es := range edges {
		src, dst := NodeID(es.Source), NodeID(es.Target)
		if _, ok := g.byID[src]; !ok {
			return nil, &InvalidNodeError{ID: src}
		}
		if _, ok := g.byID[dst]; !ok {
			return nil, &InvalidNodeError{ID: dst}
		}
		active := true
		if es.IsActive != nil {
			active = *es.IsActive
		}
		g.Edges = append(g.Edges, &Edge{Source: src, Target: dst, Active: active})
	}

	return g, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.byID[id]
	return ok
}

// Clone returns a deep copy, annotations included. The engine works on
// clones so a running analysis never observes a concurrent toggle.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Nodes: make([]*Node, len(g.Nodes)),
		Edges: make([]*Edge, len(g.Edges)),
		byID:  make(map[NodeID]*Node, len(g.Nodes)),
	}
	for i, n := range g.Nodes {
		cp := *n
		c.Nodes[i] = &cp
		c.byID[cp.ID] = &cp
	}
	for i, e := range g.Edges {
		cp := *e
		c.Edges[i] = &cp
	}
	return c
}

// ToggleEdge flips the Active flag of the first edge matching the unordered
// pair {u, v} and reports whether such an edge existed. A miss is a no-op.
func (g *Graph) ToggleEdge(u, v NodeID) bool {
	for _, e := range g.Edges {
		if e.Connects(u, v) {
			e.Active = !e.Active
			return true
		}
	}
	return false
}

// ResetGraph returns a fresh graph restored from original: every edge
// active, derived annotations cleared, recovery edges dropped. The input is
// not modified.
func ResetGraph(original *Graph) *Graph {
	restored := original.Clone()
	kept := restored.Edges[:0]
	for _, e := range restored.Edges {
		if e.IsRecovery {
			continue
		}
		e.Active = true
		e.IsBridge = false
		kept = append(kept, e)
	}
	restored.Edges = kept
	for _, n := range restored.Nodes {
		n.IsArticulationPoint = false
	}
	return restored
}

// ActiveAdjacency derives the undirected neighbor view restricted to active
// edges. Every node appears as a key; isolated nodes map to an empty slice.
// Pure and deterministic for a given graph.
func (g *Graph) ActiveAdjacency() map[NodeID][]NodeID {
	adj := make(map[NodeID][]NodeID, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = []NodeID{}
	}
	for _, e := range g.Edges {
		if !e.Active {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	return adj
}

// ClearAnnotations resets all derived bridge and articulation-point flags.
func (g *Graph) ClearAnnotations() {
	for _, n := range g.Nodes {
		n.IsArticulationPoint = false
	}
	for _, e := range g.Edges {
		e.IsBridge = false
	}
}

// ApplyAnnotations clears previous annotations and marks the given bridges
// and articulation points. A bridge reference marks every edge instance
// matching its unordered pair.
func (g *Graph) ApplyAnnotations(bridges []EdgeRef, articulationPoints []NodeID) {
	g.ClearAnnotations()
	for _, ref := range bridges {
		for _, e := range g.Edges {
			if ref.Matches(e) {
				e.IsBridge = true
			}
		}
	}
	for _, id := range articulationPoints {
		if n, ok := g.byID[id]; ok {
			n.IsArticulationPoint = true
		}
	}
}
