package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dd0wney/cluso-resilience/pkg/logging"
	"github.com/dd0wney/cluso-resilience/pkg/topology"
	"github.com/dd0wney/cluso-resilience/pkg/validation"
)

func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetTopology(w, r)
	case http.MethodPost:
		s.handleLoadTopology(w, r)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleGetTopology(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}

	response := TopologyResponse{
		Nodes: make([]NodeDTO, 0, len(g.Nodes)),
		Edges: make([]EdgeDTO, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		response.Nodes = append(response.Nodes, nodeToDTO(n))
	}
	for _, e := range g.Edges {
		response.Edges = append(response.Edges, edgeToDTO(e))
	}

	s.respondJSON(w, http.StatusOK, response)
}

// handleLoadTopology accepts a YAML or JSON topology document, validates it,
// and makes it the current graph plus the reset baseline.
func (s *Server) handleLoadTopology(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 4<<20))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	spec, err := topology.ParseSpec(body)
	if err != nil {
		s.metrics.TopologyLoads.WithLabelValues("error").Inc()
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validation.ValidateTopologySpec(spec); err != nil {
		s.metrics.TopologyLoads.WithLabelValues("invalid").Inc()
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Load(spec); err != nil {
		s.metrics.TopologyLoads.WithLabelValues("invalid").Inc()
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.TopologyLoads.WithLabelValues("success").Inc()
	s.metrics.SetTopologySize(len(spec.Nodes), len(spec.Edges))
	s.logger.Info("topology loaded",
		logging.Int("nodes", len(spec.Nodes)),
		logging.Int("edges", len(spec.Edges)))

	s.respondJSON(w, http.StatusCreated, LoadResponse{
		NodeCount: len(spec.Nodes),
		EdgeCount: len(spec.Edges),
	})
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Source == "" || req.Target == "" {
		s.respondError(w, http.StatusBadRequest, "source and target are required")
		return
	}

	toggled, err := s.store.ToggleEdge(topology.NodeID(req.Source), topology.NodeID(req.Target))
	if errors.Is(err, topology.ErrNoTopology) {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !toggled {
		s.respondError(w, http.StatusNotFound,
			"No edge between "+req.Source+" and "+req.Target)
		return
	}

	s.metrics.TopologyEdgeToggles.Inc()
	s.logger.Info("edge toggled",
		logging.String("source", req.Source),
		logging.String("target", req.Target))

	s.respondJSON(w, http.StatusOK, ToggleResponse{Toggled: true})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := s.store.Reset(); err != nil {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}

	s.metrics.TopologyResets.Inc()
	s.logger.Info("topology reset")

	w.WriteHeader(http.StatusNoContent)
}
