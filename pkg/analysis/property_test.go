package analysis

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// randomTopology builds a reproducible random graph from a seed: nodeCount
// nodes on a scattered canvas and a deduplicated set of unordered edge
// pairs. Dedup keeps ToggleEdge unambiguous in the properties below.
func randomTopology(seed int64, nodeCount int) *topology.Graph {
	rng := rand.New(rand.NewSource(seed))

	nodes := make([]topology.NodeSpec, nodeCount)
	for i := range nodes {
		nodes[i] = topology.NodeSpec{
			ID:   fmt.Sprintf("n%d", i),
			X:    rng.Float64() * 1000,
			Y:    rng.Float64() * 1000,
			Kind: "city",
		}
	}
	nodes[0].Kind = "hub"

	seen := make(map[[2]int]bool)
	var edges []topology.EdgeSpec
	edgeCount := rng.Intn(nodeCount * 2)
	for i := 0; i < edgeCount; i++ {
		a, b := rng.Intn(nodeCount), rng.Intn(nodeCount)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			continue
		}
		seen[[2]int{a, b}] = true
		edges = append(edges, topology.EdgeSpec{
			Source: fmt.Sprintf("n%d", a),
			Target: fmt.Sprintf("n%d", b),
		})
	}

	g, err := topology.BuildGraph(nodes, edges)
	if err != nil {
		panic(err)
	}
	return g
}

func TestResilienceInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: Deactivating a bridge splits its component in exactly two
	properties.Property("bridge removal increases component count by one", prop.ForAll(
		func(seed int64, nodeCount int) bool {
			g := randomTopology(seed, nodeCount)

			res, err := AnalyzeCriticalStructures(g)
			if err != nil {
				return false
			}

			for _, b := range res.Bridges {
				broken := g.Clone()
				before := len(ConnectedComponents(broken))
				if !broken.ToggleEdge(b.Source, b.Target) {
					return false
				}
				after := len(ConnectedComponents(broken))
				if after != before+1 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(2, 12),
	))

	// Property 2: A recovery plan reconnects every node in a single pass
	properties.Property("recovery plan yields one component", prop.ForAll(
		func(seed int64, nodeCount int) bool {
			g := randomTopology(seed, nodeCount)

			res, err := PlanRecovery(g, "n0")
			if err != nil {
				return false
			}
			res.Apply(g)

			return len(ConnectedComponents(g)) == 1
		},
		gen.Int64(),
		gen.IntRange(2, 12),
	))

	// Property 3: Planning on a repaired graph proposes nothing
	properties.Property("recovery is idempotent", prop.ForAll(
		func(seed int64, nodeCount int) bool {
			g := randomTopology(seed, nodeCount)

			res, err := PlanRecovery(g, "n0")
			if err != nil {
				return false
			}
			res.Apply(g)

			res2, err := PlanRecovery(g, "n0")
			if err != nil {
				return false
			}
			return len(res2.RecoveryEdges) == 0 && len(res2.DisconnectedNodes) == 0
		},
		gen.Int64(),
		gen.IntRange(2, 12),
	))

	// Property 4: A path exists exactly when both ends share a component
	properties.Property("path found iff same component", prop.ForAll(
		func(seed int64, nodeCount int) bool {
			g := randomTopology(seed, nodeCount)

			comps := ConnectedComponents(g)
			compOf := make(map[topology.NodeID]int)
			for _, c := range comps {
				for _, id := range c.Nodes {
					compOf[id] = c.ID
				}
			}

			rng := rand.New(rand.NewSource(seed + 1))
			source := topology.NodeID(fmt.Sprintf("n%d", rng.Intn(nodeCount)))
			target := topology.NodeID(fmt.Sprintf("n%d", rng.Intn(nodeCount)))

			res, err := FindShortestPath(g, source, target)
			if err != nil {
				return false
			}
			return res.Found == (compOf[source] == compOf[target])
		},
		gen.Int64(),
		gen.IntRange(2, 12),
	))

	properties.TestingRun(t)
}
