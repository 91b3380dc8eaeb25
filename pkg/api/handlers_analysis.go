package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-resilience/pkg/analysis"
	"github.com/dd0wney/cluso-resilience/pkg/logging"
	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// handleCriticalStructures runs bridge and articulation-point detection on a
// snapshot and writes the findings back as annotations on the live graph.
func (s *Server) handleCriticalStructures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	g, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}

	start := time.Now()
	res, err := analysis.AnalyzeCriticalStructures(g)
	if err != nil {
		s.metrics.RecordAnalysis("critical-structures", "error", time.Since(start), 0)
		if errors.Is(err, analysis.ErrEmptyGraph) {
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	elapsed := time.Since(start)

	if err := s.store.Annotate(res.Bridges, res.ArticulationPoints); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.RecordAnalysis("critical-structures", "success", elapsed, len(g.Nodes))
	s.metrics.RecordCriticalStructures(len(res.Bridges), len(res.ArticulationPoints))
	s.logger.Info("critical structures analyzed",
		logging.Algorithm("critical-structures"),
		logging.Int("bridges", len(res.Bridges)),
		logging.Int("articulation_points", len(res.ArticulationPoints)),
		logging.Latency(elapsed))

	response := CriticalStructuresResponse{
		Bridges:            make([]EdgeRefDTO, 0, len(res.Bridges)),
		ArticulationPoints: make([]string, 0, len(res.ArticulationPoints)),
		Trace:              res.Trace,
		Time:               elapsed.String(),
	}
	for _, b := range res.Bridges {
		response.Bridges = append(response.Bridges, EdgeRefDTO{
			Source: string(b.Source),
			Target: string(b.Target),
		})
	}
	for _, ap := range res.ArticulationPoints {
		response.ArticulationPoints = append(response.ArticulationPoints, string(ap))
	}

	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleShortestPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ShortestPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Source == "" || req.Target == "" {
		s.respondError(w, http.StatusBadRequest, "source and target are required")
		return
	}

	g, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}

	start := time.Now()
	res, err := analysis.FindShortestPath(g,
		topology.NodeID(req.Source), topology.NodeID(req.Target))
	if err != nil {
		s.metrics.RecordAnalysis("shortest-path", "error", time.Since(start), 0)
		var invalidErr *topology.InvalidNodeError
		if errors.As(err, &invalidErr) {
			s.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	elapsed := time.Since(start)

	s.metrics.RecordAnalysis("shortest-path", "success", elapsed, res.NodesVisited)

	response := ShortestPathResponse{
		Found: res.Found,
		Hops:  res.Hops,
		Trace: res.Trace,
		Time:  elapsed.String(),
	}
	for _, id := range res.Path {
		response.Path = append(response.Path, string(id))
	}

	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleRecoveryPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Body is optional: an empty request plans against the default hub
	var req RecoveryPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	g, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}

	start := time.Now()
	res, err := analysis.PlanRecovery(g, topology.NodeID(req.HubID))
	if err != nil {
		s.metrics.RecordAnalysis("recovery-plan", "error", time.Since(start), 0)
		if errors.Is(err, analysis.ErrEmptyGraph) {
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	elapsed := time.Since(start)

	applied := false
	if req.Apply && len(res.RecoveryEdges) > 0 {
		if err := s.store.AddRecoveryEdges(res.RecoveryEdges); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		applied = true
	}

	s.metrics.RecordAnalysis("recovery-plan", "success", elapsed, len(g.Nodes))
	s.metrics.RecordRecoveryPlan(len(res.RecoveryEdges))
	s.logger.Info("recovery plan computed",
		logging.Algorithm("recovery-plan"),
		logging.Hub(string(res.Hub)),
		logging.Int("recovery_edges", len(res.RecoveryEdges)),
		logging.Bool("applied", applied),
		logging.Latency(elapsed))

	response := RecoveryPlanResponse{
		Hub:               string(res.Hub),
		DisconnectedNodes: make([]string, 0, len(res.DisconnectedNodes)),
		RecoveryEdges:     make([]EdgeDTO, 0, len(res.RecoveryEdges)),
		Applied:           applied,
		Trace:             res.Trace,
		Time:              elapsed.String(),
	}
	for _, id := range res.DisconnectedNodes {
		response.DisconnectedNodes = append(response.DisconnectedNodes, string(id))
	}
	for i := range res.RecoveryEdges {
		response.RecoveryEdges = append(response.RecoveryEdges, edgeToDTO(&res.RecoveryEdges[i]))
	}

	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	g, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, http.StatusNotFound, "No topology loaded")
		return
	}

	comps := analysis.ConnectedComponents(g)

	response := ComponentsResponse{
		Components: make([]ComponentDTO, 0, len(comps)),
		Count:      len(comps),
	}
	for _, c := range comps {
		dto := ComponentDTO{ID: c.ID, Size: c.Size, Nodes: make([]string, 0, len(c.Nodes))}
		for _, id := range c.Nodes {
			dto.Nodes = append(dto.Nodes, string(id))
		}
		response.Components = append(response.Components, dto)
	}

	s.respondJSON(w, http.StatusOK, response)
}
