package analysis

import (
	"container/list"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// PathResult reports the outcome of a minimum-hop search. Found
// distinguishes the not-found variant; when set, Path runs source-first to
// target-last with every consecutive pair joined by an active edge, and
// Hops is len(Path)-1. NodesVisited counts the nodes the search discovered,
// whether or not they ended up on the path.
type PathResult struct {
	Found        bool
	Path         []topology.NodeID
	Hops         int
	NodesVisited int
	Trace        []string
}

// FindShortestPath runs a breadth-first search over the active-edge
// adjacency. Both ids must exist in the graph; an unknown id yields
// *topology.InvalidNodeError. The search terminates when the target is
// dequeued, not merely enqueued.
func FindShortestPath(g *topology.Graph, source, target topology.NodeID) (*PathResult, error) {
	if !g.HasNode(source) {
		return nil, &topology.InvalidNodeError{ID: source}
	}
	if !g.HasNode(target) {
		return nil, &topology.InvalidNodeError{ID: target}
	}

	var tr trace

	if source == target {
		tr.addf("source equals target %s, zero hops", source)
		return &PathResult{
			Found:        true,
			Path:         []topology.NodeID{source},
			Hops:         0,
			NodesVisited: 1,
			Trace:        tr.lines,
		}, nil
	}

	adj := g.ActiveAdjacency()

	queue := list.New()
	queue.PushBack(source)
	visited := map[topology.NodeID]bool{source: true}
	parent := make(map[topology.NodeID]topology.NodeID)
	tr.addf("enqueue %s", source)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front()).(topology.NodeID)
		tr.addf("dequeue %s", current)

		if current == target {
			path := reconstructPath(parent, source, target)
			tr.addf("target %s reached in %d hops", target, len(path)-1)
			return &PathResult{
				Found:        true,
				Path:         path,
				Hops:         len(path) - 1,
				NodesVisited: len(visited),
				Trace:        tr.lines,
			}, nil
		}

		for _, neighbor := range adj[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			queue.PushBack(neighbor)
			tr.addf("discover %s via %s", neighbor, current)
		}
	}

	tr.addf("queue exhausted, no active route from %s to %s", source, target)
	return &PathResult{Found: false, NodesVisited: len(visited), Trace: tr.lines}, nil
}

// reconstructPath walks predecessors from target back to source, then
// reverses into source-first order.
func reconstructPath(parent map[topology.NodeID]topology.NodeID, source, target topology.NodeID) []topology.NodeID {
	path := []topology.NodeID{target}
	for node := target; node != source; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
