package topology

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
nodes:
  - id: hub-1
    label: Central Hub
    x: 0
    y: 0
    kind: hub
  - id: city-a
    x: 100
    y: 50
    kind: city
edges:
  - source: hub-1
    target: city-a
  - source: city-a
    target: hub-1
    isActive: false
`

func TestParseSpec_YAML(t *testing.T) {
	spec, err := ParseSpec([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseSpec failed: %v", err)
	}

	if len(spec.Nodes) != 2 || len(spec.Edges) != 2 {
		t.Fatalf("Got %d nodes, %d edges", len(spec.Nodes), len(spec.Edges))
	}
	if spec.Nodes[0].ID != "hub-1" || spec.Nodes[0].Kind != "hub" {
		t.Errorf("Nodes[0] = %+v", spec.Nodes[0])
	}
	if spec.Edges[0].IsActive != nil {
		t.Error("Omitted isActive must stay nil")
	}
	if spec.Edges[1].IsActive == nil || *spec.Edges[1].IsActive {
		t.Error("Explicit isActive: false not parsed")
	}
}

func TestParseSpec_JSON(t *testing.T) {
	// JSON is a YAML subset, so the same decoder handles it
	data := []byte(`{"nodes":[{"id":"a","x":1,"y":2,"kind":"city"}],"edges":[]}`)

	spec, err := ParseSpec(data)
	if err != nil {
		t.Fatalf("ParseSpec failed: %v", err)
	}
	if len(spec.Nodes) != 1 || spec.Nodes[0].ID != "a" {
		t.Errorf("Nodes = %+v", spec.Nodes)
	}
}

func TestParseSpec_Malformed(t *testing.T) {
	if _, err := ParseSpec([]byte("nodes: [")); err == nil {
		t.Error("Expected error for malformed document")
	}
}

func TestLoadSpecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	spec, err := LoadSpecFile(path)
	if err != nil {
		t.Fatalf("LoadSpecFile failed: %v", err)
	}
	if len(spec.Nodes) != 2 {
		t.Errorf("Got %d nodes, want 2", len(spec.Nodes))
	}

	if _, err := LoadSpecFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSpecFromGraph_RoundTrip(t *testing.T) {
	spec, err := ParseSpec([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseSpec failed: %v", err)
	}
	g, err := BuildGraph(spec.Nodes, spec.Edges)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	// Session state that must not persist
	g.Edges = append(g.Edges, &Edge{Source: "hub-1", Target: "city-a", Active: true, IsRecovery: true})
	g.Edges[0].IsBridge = true

	out := SpecFromGraph(g)

	if len(out.Edges) != 2 {
		t.Errorf("Recovery edge must be dropped, got %d edges", len(out.Edges))
	}
	if out.Edges[0].IsActive == nil || !*out.Edges[0].IsActive {
		t.Errorf("Edges[0].IsActive = %v, want true", out.Edges[0].IsActive)
	}

	encoded, err := EncodeSpec(out)
	if err != nil {
		t.Fatalf("EncodeSpec failed: %v", err)
	}
	reparsed, err := ParseSpec(encoded)
	if err != nil {
		t.Fatalf("ParseSpec of encoded output failed: %v", err)
	}
	if len(reparsed.Nodes) != 2 || len(reparsed.Edges) != 2 {
		t.Errorf("Round trip lost content: %d nodes, %d edges", len(reparsed.Nodes), len(reparsed.Edges))
	}
}
