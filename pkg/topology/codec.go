package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSpec decodes a TopologySpec from YAML. JSON documents parse too,
// since JSON is a YAML subset.
func ParseSpec(data []byte) (*TopologySpec, error) {
	var spec TopologySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse topology spec: %w", err)
	}
	return &spec, nil
}

// LoadSpecFile reads and decodes a topology file.
func LoadSpecFile(path string) (*TopologySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology file: %w", err)
	}
	return ParseSpec(data)
}

// EncodeSpec serializes a spec to YAML.
func EncodeSpec(spec *TopologySpec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode topology spec: %w", err)
	}
	return data, nil
}

// SpecFromGraph converts a graph back to its persisted form. Derived fields
// and recovery edges are never part of persisted input, so both are dropped.
func SpecFromGraph(g *Graph) *TopologySpec {
	spec := &TopologySpec{
		Nodes: make([]NodeSpec, 0, len(g.Nodes)),
		Edges: make([]EdgeSpec, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		spec.Nodes = append(spec.Nodes, NodeSpec{
			ID:    string(n.ID),
			Label: n.Label,
			X:     n.Position.X,
			Y:     n.Position.Y,
			Kind:  string(n.Kind),
		})
	}
	for _, e := range g.Edges {
		if e.IsRecovery {
			continue
		}
		active := e.Active
		spec.Edges = append(spec.Edges, EdgeSpec{
			Source:   string(e.Source),
			Target:   string(e.Target),
			IsActive: &active,
		})
	}
	return spec
}
