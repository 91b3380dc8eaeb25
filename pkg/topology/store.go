package topology

import (
	"errors"
	"sync"
)

// ErrNoTopology is returned by store operations before a topology is loaded.
var ErrNoTopology = errors.New("no topology loaded")

// Store holds the current graph and the originally loaded one (for reset).
// It is the single mutable resource on the serving side; the analysis engine
// itself is stateless and only ever sees Snapshot copies. The mutex guards
// concurrent HTTP access, nothing more.
type Store struct {
	mu       sync.RWMutex
	current  *Graph
	original *Graph
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load validates endpoint references, builds the graph, and makes it both
// the current and the reset baseline.
func (s *Store) Load(spec *TopologySpec) error {
	g, err := BuildGraph(spec.Nodes, spec.Edges)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = g
	s.original = g.Clone()
	return nil
}

// Loaded reports whether a topology is present.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Snapshot returns a deep copy of the current graph for handing to the
// analysis engine.
func (s *Store) Snapshot() (*Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoTopology
	}
	return s.current.Clone(), nil
}

// ToggleEdge flips the failure flag of the first edge matching {u, v} on
// the current graph. Stale annotations are cleared: they are recomputed per
// analysis run, never incrementally maintained.
func (s *Store) ToggleEdge(u, v NodeID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false, ErrNoTopology
	}
	toggled := s.current.ToggleEdge(u, v)
	if toggled {
		s.current.ClearAnnotations()
	}
	return toggled, nil
}

// Reset restores the originally loaded topology: all edges active, no
// annotations, no recovery edges.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.original == nil {
		return ErrNoTopology
	}
	s.current = ResetGraph(s.original)
	return nil
}

// AddRecoveryEdges installs planned synthetic edges on the current graph.
// Each is forced active and flagged IsRecovery so a later reset drops it.
func (s *Store) AddRecoveryEdges(edges []Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoTopology
	}
	for _, e := range edges {
		cp := e
		cp.Active = true
		cp.IsRecovery = true
		s.current.Edges = append(s.current.Edges, &cp)
	}
	return nil
}

// Annotate applies analysis results to the current graph.
func (s *Store) Annotate(bridges []EdgeRef, articulationPoints []NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoTopology
	}
	s.current.ApplyAnnotations(bridges, articulationPoints)
	return nil
}
