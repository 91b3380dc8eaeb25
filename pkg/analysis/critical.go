package analysis

import (
	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// CriticalStructureResult holds the bridges and articulation points found by
// a single analysis run, plus the ordered trace of the traversal. Bridge
// references are oriented parent-to-child in DFS-tree order.
type CriticalStructureResult struct {
	Bridges            []topology.EdgeRef
	ArticulationPoints []topology.NodeID
	Trace              []string
}

// halfEdge is one direction of an undirected edge. The edge index
// distinguishes parallel edges between the same pair, which matters for the
// parent-skip: only the tree-edge instance is excluded, any parallel copy to
// the parent is a genuine back edge.
type halfEdge struct {
	peer topology.NodeID
	edge int
}

// activeHalfEdges builds the edge-indexed adjacency the analyzer traverses.
// Every node appears, isolated ones with no entries.
func activeHalfEdges(g *topology.Graph) map[topology.NodeID][]halfEdge {
	adj := make(map[topology.NodeID][]halfEdge, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = nil
	}
	for i, e := range g.Edges {
		if !e.Active {
			continue
		}
		adj[e.Source] = append(adj[e.Source], halfEdge{peer: e.Target, edge: i})
		adj[e.Target] = append(adj[e.Target], halfEdge{peer: e.Source, edge: i})
	}
	return adj
}

// dfsFrame carries per-node iteration state for the explicit-stack DFS.
type dfsFrame struct {
	node       topology.NodeID
	parentEdge int // edge index consumed as the tree edge; -1 at the root
	next       int // resume position in the adjacency slice
	children   int // DFS-tree children, for the root articulation rule
}

// AnalyzeCriticalStructures runs a single depth-first traversal over the
// active-edge adjacency, starting at the first node in the graph's node
// list, and reports bridges and articulation points via discovery/low-link
// values. Nodes unreachable from the start node are never visited: the
// single-root traversal analyzes only the start node's component. The DFS
// uses an explicit frame stack, so recursion depth is not a limit on
// topology size.
func AnalyzeCriticalStructures(g *topology.Graph) (*CriticalStructureResult, error) {
	if len(g.Nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	adj := activeHalfEdges(g)
	var tr trace

	discovery := make(map[topology.NodeID]int, len(g.Nodes))
	low := make(map[topology.NodeID]int, len(g.Nodes))
	counter := 0

	flagged := make(map[topology.NodeID]bool)
	var articulationPoints []topology.NodeID
	var bridges []topology.EdgeRef

	start := g.Nodes[0].ID
	discovery[start], low[start] = counter, counter
	counter++
	tr.addf("visit %s discovery=%d", start, discovery[start])

	stack := []dfsFrame{{node: start, parentEdge: -1}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		neighbors := adj[f.node]

		if f.next < len(neighbors) {
			he := neighbors[f.next]
			f.next++
			if he.edge == f.parentEdge {
				// skip the single tree-edge instance back to the parent
				continue
			}
			tr.addf("explore %s-%s", f.node, he.peer)
			if _, seen := discovery[he.peer]; !seen {
				f.children++
				discovery[he.peer], low[he.peer] = counter, counter
				counter++
				tr.addf("visit %s discovery=%d", he.peer, discovery[he.peer])
				stack = append(stack, dfsFrame{
					node:       he.peer,
					parentEdge: he.edge,
				})
			} else {
				// back edge: pulls low down, never a bridge candidate
				if discovery[he.peer] < low[f.node] {
					low[f.node] = discovery[he.peer]
				}
				tr.addf("back edge %s-%s low[%s]=%d", f.node, he.peer, f.node, low[f.node])
			}
			continue
		}

		// f is fully explored; pop and settle against its parent.
		done := *f
		stack = stack[:len(stack)-1]

		if len(stack) == 0 {
			// DFS root: articulation iff more than one child subtree
			if done.children > 1 {
				flagged[done.node] = true
				articulationPoints = append(articulationPoints, done.node)
				tr.addf("articulation point %s (root, %d subtrees)", done.node, done.children)
			}
			continue
		}

		p := &stack[len(stack)-1]
		if low[done.node] < low[p.node] {
			low[p.node] = low[done.node]
		}
		if low[done.node] > discovery[p.node] {
			bridges = append(bridges, topology.EdgeRef{Source: p.node, Target: done.node})
			tr.addf("bridge %s-%s low[%s]=%d discovery[%s]=%d",
				p.node, done.node, done.node, low[done.node], p.node, discovery[p.node])
		}
		if p.parentEdge != -1 && low[done.node] >= discovery[p.node] && !flagged[p.node] {
			flagged[p.node] = true
			articulationPoints = append(articulationPoints, p.node)
			tr.addf("articulation point %s", p.node)
		}
	}

	return &CriticalStructureResult{
		Bridges:            bridges,
		ArticulationPoints: articulationPoints,
		Trace:              tr.lines,
	}, nil
}
