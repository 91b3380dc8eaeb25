package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

func TestPlanRecovery_EmptyGraph(t *testing.T) {
	g := graphFrom(t, nil, nil)

	_, err := PlanRecovery(g, "")
	if !errors.Is(err, ErrEmptyGraph) {
		t.Fatalf("Expected ErrEmptyGraph, got %v", err)
	}
}

func TestPlanRecovery_AllReachable(t *testing.T) {
	g := graphFrom(t, []string{"hub", "a", "b"}, [][2]string{{"hub", "a"}, {"a", "b"}})

	res, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}

	if len(res.RecoveryEdges) != 0 || len(res.DisconnectedNodes) != 0 {
		t.Errorf("Expected empty plan, got edges=%v disconnected=%v",
			res.RecoveryEdges, res.DisconnectedNodes)
	}
	if res.Hub != "hub" {
		t.Errorf("Hub = %v, want hub", res.Hub)
	}
}

// TestPlanRecovery_NearestAnchor places one cut-off node nearer to a leaf
// than to the hub: the synthetic edge must anchor at the leaf.
func TestPlanRecovery_NearestAnchor(t *testing.T) {
	g := graphWithPositions(t, []topology.NodeSpec{
		{ID: "hub", X: 0, Y: 0, Kind: "hub"},
		{ID: "mid", X: 50, Y: 0, Kind: "city"},
		{ID: "lost", X: 60, Y: 0, Kind: "barangay"},
	}, [][2]string{{"hub", "mid"}})

	res, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}

	if len(res.RecoveryEdges) != 1 {
		t.Fatalf("Expected 1 recovery edge, got %v", res.RecoveryEdges)
	}
	e := res.RecoveryEdges[0]
	if e.Source != "mid" || e.Target != "lost" {
		t.Errorf("Expected recovery edge mid-lost, got %v-%v", e.Source, e.Target)
	}
	if !e.Active || !e.IsRecovery {
		t.Errorf("Recovery edge must be active and flagged: %+v", e)
	}
	if len(res.DisconnectedNodes) != 1 || res.DisconnectedNodes[0] != "lost" {
		t.Errorf("DisconnectedNodes = %v, want [lost]", res.DisconnectedNodes)
	}
}

// TestPlanRecovery_NoChaining cuts off two nodes that sit next to each
// other, far from the hub. Both must anchor to the originally reachable
// set; neither may anchor to the other even though it is nearer.
func TestPlanRecovery_NoChaining(t *testing.T) {
	g := graphWithPositions(t, []topology.NodeSpec{
		{ID: "hub", X: 0, Y: 0, Kind: "hub"},
		{ID: "lost1", X: 100, Y: 0, Kind: "city"},
		{ID: "lost2", X: 101, Y: 0, Kind: "city"},
	}, nil)

	res, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}

	if len(res.RecoveryEdges) != 2 {
		t.Fatalf("Expected 2 recovery edges, got %v", res.RecoveryEdges)
	}
	for _, e := range res.RecoveryEdges {
		if e.Source != "hub" {
			t.Errorf("Recovery edge %v-%v must anchor to the original reachable set", e.Source, e.Target)
		}
	}
}

// TestPlanRecovery_EquidistantAnchors puts several anchors at the same
// distance from the cut-off node. Which one wins is not pinned down; the
// chosen anchor must be in the reachable set and at minimal distance.
func TestPlanRecovery_EquidistantAnchors(t *testing.T) {
	g := graphWithPositions(t, []topology.NodeSpec{
		{ID: "hub", X: 0, Y: 0, Kind: "hub"},
		{ID: "left", X: -10, Y: 10, Kind: "city"},
		{ID: "right", X: 10, Y: 10, Kind: "city"},
		{ID: "lost", X: 0, Y: 10, Kind: "barangay"},
	}, [][2]string{{"hub", "left"}, {"hub", "right"}})

	res, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}

	if len(res.RecoveryEdges) != 1 {
		t.Fatalf("Expected 1 recovery edge, got %v", res.RecoveryEdges)
	}

	reachable := []topology.NodeID{"hub", "left", "right"}
	anchor := res.RecoveryEdges[0].Source
	found := false
	for _, id := range reachable {
		if anchor == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("Anchor %v is not in the reachable set %v", anchor, reachable)
	}

	lost, _ := g.Node("lost")
	dist := func(id topology.NodeID) float64 {
		n, _ := g.Node(id)
		return math.Hypot(n.Position.X-lost.Position.X, n.Position.Y-lost.Position.Y)
	}
	best := math.Inf(1)
	for _, id := range reachable {
		if d := dist(id); d < best {
			best = d
		}
	}
	if got := dist(anchor); got != best {
		t.Errorf("Anchor %v at distance %v, want minimal distance %v", anchor, got, best)
	}
}

func TestPlanRecovery_HubSelection(t *testing.T) {
	t.Run("explicit id wins", func(t *testing.T) {
		g := graphWithPositions(t, []topology.NodeSpec{
			{ID: "a", Kind: "city"},
			{ID: "h", Kind: "hub"},
		}, [][2]string{{"a", "h"}})

		res, err := PlanRecovery(g, "a")
		if err != nil {
			t.Fatalf("PlanRecovery failed: %v", err)
		}
		if res.Hub != "a" {
			t.Errorf("Hub = %v, want a", res.Hub)
		}
	})

	t.Run("first hub kind when id missing", func(t *testing.T) {
		g := graphWithPositions(t, []topology.NodeSpec{
			{ID: "a", Kind: "city"},
			{ID: "h", Kind: "hub"},
		}, [][2]string{{"a", "h"}})

		res, err := PlanRecovery(g, "ghost")
		if err != nil {
			t.Fatalf("PlanRecovery failed: %v", err)
		}
		if res.Hub != "h" {
			t.Errorf("Hub = %v, want h", res.Hub)
		}
	})

	t.Run("first node when no hub kind", func(t *testing.T) {
		g := graphFrom(t, []string{"a", "b"}, [][2]string{{"a", "b"}})

		res, err := PlanRecovery(g, "")
		if err != nil {
			t.Fatalf("PlanRecovery failed: %v", err)
		}
		if res.Hub != "a" {
			t.Errorf("Hub = %v, want a", res.Hub)
		}
	})
}

// TestRecoveryResult_Apply installs the plan and expects full connectivity.
func TestRecoveryResult_Apply(t *testing.T) {
	g := graphWithPositions(t, []topology.NodeSpec{
		{ID: "hub", X: 0, Y: 0, Kind: "hub"},
		{ID: "a", X: 10, Y: 0, Kind: "city"},
		{ID: "lost", X: 30, Y: 0, Kind: "barangay"},
	}, [][2]string{{"hub", "a"}})

	res, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}
	res.Apply(g)

	components := ConnectedComponents(g)
	if len(components) != 1 {
		t.Errorf("Expected a single component after apply, got %d", len(components))
	}

	// A second plan on the repaired graph is empty
	res2, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}
	if len(res2.RecoveryEdges) != 0 {
		t.Errorf("Expected empty plan after apply, got %v", res2.RecoveryEdges)
	}
}

// TestPlanRecovery_IgnoresFailedLinks verifies a node behind a failed link
// counts as cut off.
func TestPlanRecovery_IgnoresFailedLinks(t *testing.T) {
	g := graphWithPositions(t, []topology.NodeSpec{
		{ID: "hub", X: 0, Y: 0, Kind: "hub"},
		{ID: "a", X: 10, Y: 0, Kind: "city"},
	}, [][2]string{{"hub", "a"}})
	deactivate(t, g, "hub", "a")

	res, err := PlanRecovery(g, "hub")
	if err != nil {
		t.Fatalf("PlanRecovery failed: %v", err)
	}

	if len(res.DisconnectedNodes) != 1 || res.DisconnectedNodes[0] != "a" {
		t.Errorf("DisconnectedNodes = %v, want [a]", res.DisconnectedNodes)
	}
}
