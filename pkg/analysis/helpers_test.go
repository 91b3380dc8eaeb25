package analysis

import (
	"testing"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// graphFrom builds a graph from bare node ids and edge pairs, positions at
// the origin. Tests that care about geometry use graphWithPositions.
func graphFrom(t *testing.T, nodeIDs []string, edges [][2]string) *topology.Graph {
	t.Helper()

	nodes := make([]topology.NodeSpec, len(nodeIDs))
	for i, id := range nodeIDs {
		nodes[i] = topology.NodeSpec{ID: id, Kind: "city"}
	}
	edgeSpecs := make([]topology.EdgeSpec, len(edges))
	for i, e := range edges {
		edgeSpecs[i] = topology.EdgeSpec{Source: e[0], Target: e[1]}
	}

	g, err := topology.BuildGraph(nodes, edgeSpecs)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	return g
}

// graphWithPositions builds a graph from positioned node specs and edge pairs.
func graphWithPositions(t *testing.T, nodes []topology.NodeSpec, edges [][2]string) *topology.Graph {
	t.Helper()

	edgeSpecs := make([]topology.EdgeSpec, len(edges))
	for i, e := range edges {
		edgeSpecs[i] = topology.EdgeSpec{Source: e[0], Target: e[1]}
	}

	g, err := topology.BuildGraph(nodes, edgeSpecs)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	return g
}

// deactivate flips the named edge inactive, failing the test on a miss.
func deactivate(t *testing.T, g *topology.Graph, u, v string) {
	t.Helper()
	if !g.ToggleEdge(topology.NodeID(u), topology.NodeID(v)) {
		t.Fatalf("no edge %s-%s to deactivate", u, v)
	}
}

// hasBridge reports whether the result contains the unordered pair {u, v}.
func hasBridge(res *CriticalStructureResult, u, v string) bool {
	for _, b := range res.Bridges {
		if (string(b.Source) == u && string(b.Target) == v) ||
			(string(b.Source) == v && string(b.Target) == u) {
			return true
		}
	}
	return false
}

// hasArticulation reports whether the result flags the given node.
func hasArticulation(res *CriticalStructureResult, id string) bool {
	for _, ap := range res.ArticulationPoints {
		if string(ap) == id {
			return true
		}
	}
	return false
}
