package analysis

import (
	"container/list"
	"math"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// RecoveryResult is a proposed repair: one synthetic edge per node cut off
// from the hub, each anchored to the geometrically nearest node that was
// reachable before the plan. The plan is computed against the snapshot it
// was given; Apply installs it on a graph.
type RecoveryResult struct {
	Hub               topology.NodeID
	RecoveryEdges     []topology.Edge
	DisconnectedNodes []topology.NodeID
	Trace             []string
}

// Apply appends the planned recovery edges to g. Edges are marked active
// and IsRecovery, so a later reset drops them.
func (r *RecoveryResult) Apply(g *topology.Graph) {
	for _, e := range r.RecoveryEdges {
		cp := e
		g.Edges = append(g.Edges, &cp)
	}
}

// PlanRecovery finds every node with no active route to the hub and pairs
// each with its nearest reachable anchor by Euclidean distance. Anchors are
// drawn only from the set reachable before any recovery edge is added, so
// planned edges never chain through one another. hubID selects the hub when
// it names an existing node; otherwise the first node of hub kind is used,
// falling back to the first node in the graph.
func PlanRecovery(g *topology.Graph, hubID topology.NodeID) (*RecoveryResult, error) {
	if len(g.Nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	var tr trace

	hub := selectHub(g, hubID)
	tr.addf("hub %s", hub)

	reachable := reachableFrom(g, hub)
	tr.addf("%d of %d nodes reachable from hub", len(reachable), len(g.Nodes))

	inReach := make(map[topology.NodeID]bool, len(reachable))
	for _, id := range reachable {
		inReach[id] = true
	}

	result := &RecoveryResult{Hub: hub}

	for _, n := range g.Nodes {
		if inReach[n.ID] {
			continue
		}
		result.DisconnectedNodes = append(result.DisconnectedNodes, n.ID)
		anchor := nearestReachable(g, n, reachable)
		result.RecoveryEdges = append(result.RecoveryEdges, topology.Edge{
			Source:     anchor,
			Target:     n.ID,
			Active:     true,
			IsRecovery: true,
		})
		tr.addf("recover %s via %s", n.ID, anchor)
	}

	if len(result.DisconnectedNodes) == 0 {
		tr.addf("all nodes reachable, no recovery needed")
	}

	result.Trace = tr.lines
	return result, nil
}

// selectHub resolves the hub node the plan reconnects toward.
func selectHub(g *topology.Graph, hubID topology.NodeID) topology.NodeID {
	if hubID != "" && g.HasNode(hubID) {
		return hubID
	}
	for _, n := range g.Nodes {
		if n.Kind == topology.KindHub {
			return n.ID
		}
	}
	return g.Nodes[0].ID
}

// reachableFrom returns the nodes with an active route from start, in BFS
// discovery order. The ordering is what makes nearest-anchor ties
// deterministic: the earlier-discovered node wins.
func reachableFrom(g *topology.Graph, start topology.NodeID) []topology.NodeID {
	adj := g.ActiveAdjacency()

	order := []topology.NodeID{start}
	visited := map[topology.NodeID]bool{start: true}
	queue := list.New()
	queue.PushBack(start)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front()).(topology.NodeID)
		for _, neighbor := range adj[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			order = append(order, neighbor)
			queue.PushBack(neighbor)
		}
	}
	return order
}

// nearestReachable picks the reachable node geometrically closest to n.
// Strict comparison keeps the earliest-discovered candidate on exact ties.
func nearestReachable(g *topology.Graph, n *topology.Node, reachable []topology.NodeID) topology.NodeID {
	best := reachable[0]
	bestDist := math.Inf(1)
	for _, id := range reachable {
		candidate, _ := g.Node(id)
		d := math.Hypot(candidate.Position.X-n.Position.X, candidate.Position.Y-n.Position.Y)
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}
