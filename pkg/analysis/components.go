package analysis

import (
	"container/list"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// Component is one connected piece of the active-edge graph.
type Component struct {
	ID    int
	Nodes []topology.NodeID
	Size  int
}

// ConnectedComponents partitions the nodes by active-edge connectivity.
// Components are numbered in order of their first node's position in the
// node list, and member nodes are listed in BFS discovery order.
func ConnectedComponents(g *topology.Graph) []Component {
	adj := g.ActiveAdjacency()
	visited := make(map[topology.NodeID]bool, len(g.Nodes))

	var components []Component
	for _, n := range g.Nodes {
		if visited[n.ID] {
			continue
		}

		members := []topology.NodeID{n.ID}
		visited[n.ID] = true
		queue := list.New()
		queue.PushBack(n.ID)

		for queue.Len() > 0 {
			current := queue.Remove(queue.Front()).(topology.NodeID)
			for _, neighbor := range adj[current] {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				members = append(members, neighbor)
				queue.PushBack(neighbor)
			}
		}

		components = append(components, Component{
			ID:    len(components),
			Nodes: members,
			Size:  len(members),
		})
	}
	return components
}
