// Package api serves the resilience engine over HTTP: topology management,
// failure simulation, the analysis endpoints, and a GraphQL surface.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-resilience/pkg/graphql"
	"github.com/dd0wney/cluso-resilience/pkg/logging"
	"github.com/dd0wney/cluso-resilience/pkg/metrics"
	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// Server represents the HTTP API server
type Server struct {
	store          *topology.Store
	graphqlHandler *graphql.GraphQLHandler
	logger         logging.Logger
	metrics        *metrics.Registry
	startTime      time.Time
	version        string
	port           int
	corsOrigins    []string
}

// NewServer creates a new API server
func NewServer(store *topology.Store, port int, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	s := &Server{
		store:     store,
		logger:    logger.With(logging.Component("api")),
		metrics:   metrics.DefaultRegistry(),
		startTime: time.Now(),
		version:   "1.0.0",
		port:      port,
	}

	schema, err := graphql.GenerateSchema(store)
	if err != nil {
		s.logger.Warn("graphql schema unavailable", logging.Error(err))
	} else {
		s.graphqlHandler = graphql.NewGraphQLHandler(schema)
	}

	return s
}

// SetCORSOrigins restricts cross-origin access to the given origins.
// An empty list disables cross-origin requests; "*" allows any origin.
func (s *Server) SetCORSOrigins(origins []string) {
	s.corsOrigins = origins
}

// Handler builds the full handler chain. Factored out of Start so tests can
// drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	// Topology endpoints
	mux.HandleFunc("/topology", s.handleTopology)
	mux.HandleFunc("/topology/toggle", s.handleToggle)
	mux.HandleFunc("/topology/reset", s.handleReset)

	// Analysis endpoints
	mux.HandleFunc("/analyze/critical-structures", s.handleCriticalStructures)
	mux.HandleFunc("/analyze/shortest-path", s.handleShortestPath)
	mux.HandleFunc("/analyze/recovery-plan", s.handleRecoveryPlan)
	mux.HandleFunc("/analyze/components", s.handleComponents)

	// GraphQL endpoint
	mux.HandleFunc("/graphql", s.handleGraphQL)

	return s.panicRecoveryMiddleware(
		s.loggingMiddleware(
			s.corsMiddleware(
				s.metricsMiddleware(mux))))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("server starting", logging.String("addr", addr))

	go s.updateMetricsPeriodically()

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
		Loaded:    s.store.Loaded(),
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	if s.graphqlHandler == nil {
		s.respondError(w, http.StatusServiceUnavailable, "GraphQL endpoint not available")
		return
	}
	s.graphqlHandler.ServeHTTP(w, r)
}

// Helper methods

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	s.respondJSON(w, status, response)
}

func nodeToDTO(n *topology.Node) NodeDTO {
	return NodeDTO{
		ID:                  string(n.ID),
		Label:               n.Label,
		X:                   n.Position.X,
		Y:                   n.Position.Y,
		Kind:                string(n.Kind),
		IsArticulationPoint: n.IsArticulationPoint,
	}
}

func edgeToDTO(e *topology.Edge) EdgeDTO {
	return EdgeDTO{
		Source:     string(e.Source),
		Target:     string(e.Target),
		Active:     e.Active,
		IsBridge:   e.IsBridge,
		IsRecovery: e.IsRecovery,
	}
}
