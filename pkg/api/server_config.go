package api

import (
	"os"
	"strings"

	"github.com/dd0wney/cluso-resilience/pkg/logging"
)

// InitCORSFromEnv initializes CORS configuration from environment variables.
// CORS_ALLOWED_ORIGINS: comma-separated list of allowed origins.
// Use "*" to allow all origins (NOT recommended for production).
func (s *Server) InitCORSFromEnv() {
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Secure default: no cross-origin requests allowed
		s.corsOrigins = nil
		s.logger.Info("cors disabled, CORS_ALLOWED_ORIGINS not set")
		return
	}

	origins := strings.Split(originsEnv, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}

	for _, o := range origins {
		if o == "*" {
			s.logger.Warn("cors allows all origins, not recommended for production")
			break
		}
	}

	s.corsOrigins = origins
	s.logger.Info("cors configured", logging.Count(len(origins)))
}
