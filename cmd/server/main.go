package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/dd0wney/cluso-resilience/pkg/api"
	"github.com/dd0wney/cluso-resilience/pkg/logging"
	"github.com/dd0wney/cluso-resilience/pkg/topology"
	"github.com/dd0wney/cluso-resilience/pkg/validation"
)

func main() {
	port := flag.Int("port", 0, "HTTP server port (default 8080, or set PORT)")
	topologyFile := flag.String("topology", "", "Topology file to preload (YAML or JSON)")
	flag.Parse()

	// Get port from env if not provided
	if *port == 0 {
		if envPort := os.Getenv("PORT"); envPort != "" {
			if p, err := strconv.Atoi(envPort); err == nil {
				*port = p
			} else {
				*port = 8080
			}
		} else {
			*port = 8080
		}
	}

	logger := logging.DefaultLogger().With(logging.Component("server"))

	store := topology.NewStore()
	if *topologyFile != "" {
		spec, err := topology.LoadSpecFile(*topologyFile)
		if err != nil {
			logger.Error("failed to load topology file",
				logging.Path(*topologyFile), logging.Error(err))
			os.Exit(1)
		}
		if err := validation.ValidateTopologySpec(spec); err != nil {
			logger.Error("invalid topology file",
				logging.Path(*topologyFile), logging.Error(err))
			os.Exit(1)
		}
		if err := store.Load(spec); err != nil {
			logger.Error("failed to build topology", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("topology preloaded",
			logging.Path(*topologyFile),
			logging.Int("nodes", len(spec.Nodes)),
			logging.Int("edges", len(spec.Edges)))
	}

	server := api.NewServer(store, *port, logger)
	server.InitCORSFromEnv()

	logger.Info("resilience server starting", logging.Int("port", *port))
	if err := server.Start(); err != nil {
		logger.Error("server error", logging.Error(err))
		os.Exit(1)
	}
}
