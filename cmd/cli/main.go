// Command cli runs a one-shot analysis against a topology file and prints a
// report, without starting the HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dd0wney/cluso-resilience/pkg/analysis"
	"github.com/dd0wney/cluso-resilience/pkg/topology"
	"github.com/dd0wney/cluso-resilience/pkg/validation"
)

func main() {
	topologyFile := flag.String("topology", "", "Topology file (YAML or JSON, required)")
	mode := flag.String("mode", "critical", "Analysis to run: critical, path, recovery, components")
	source := flag.String("source", "", "Source node id (path mode)")
	target := flag.String("target", "", "Target node id (path mode)")
	hub := flag.String("hub", "", "Hub node id (recovery mode, optional)")
	showTrace := flag.Bool("trace", false, "Print the algorithm trace")
	flag.Parse()

	if *topologyFile == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -topology FILE [-mode critical|path|recovery|components]")
		os.Exit(2)
	}

	spec, err := topology.LoadSpecFile(*topologyFile)
	if err != nil {
		fatal(err)
	}
	if err := validation.ValidateTopologySpec(spec); err != nil {
		fatal(err)
	}
	g, err := topology.BuildGraph(spec.Nodes, spec.Edges)
	if err != nil {
		fatal(err)
	}

	switch *mode {
	case "critical":
		res, err := analysis.AnalyzeCriticalStructures(g)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("bridges: %d\n", len(res.Bridges))
		for _, b := range res.Bridges {
			fmt.Printf("  %s - %s\n", b.Source, b.Target)
		}
		fmt.Printf("articulation points: %d\n", len(res.ArticulationPoints))
		for _, ap := range res.ArticulationPoints {
			fmt.Printf("  %s\n", ap)
		}
		printTrace(*showTrace, res.Trace)

	case "path":
		if *source == "" || *target == "" {
			fmt.Fprintln(os.Stderr, "path mode needs -source and -target")
			os.Exit(2)
		}
		res, err := analysis.FindShortestPath(g,
			topology.NodeID(*source), topology.NodeID(*target))
		if err != nil {
			fatal(err)
		}
		if !res.Found {
			fmt.Printf("no active route from %s to %s\n", *source, *target)
		} else {
			fmt.Printf("route (%d hops):", res.Hops)
			for _, id := range res.Path {
				fmt.Printf(" %s", id)
			}
			fmt.Println()
		}
		printTrace(*showTrace, res.Trace)

	case "recovery":
		res, err := analysis.PlanRecovery(g, topology.NodeID(*hub))
		if err != nil {
			fatal(err)
		}
		fmt.Printf("hub: %s\n", res.Hub)
		fmt.Printf("disconnected nodes: %d\n", len(res.DisconnectedNodes))
		for i, id := range res.DisconnectedNodes {
			e := res.RecoveryEdges[i]
			fmt.Printf("  %s -> recover via %s\n", id, e.Source)
		}
		printTrace(*showTrace, res.Trace)

	case "components":
		comps := analysis.ConnectedComponents(g)
		fmt.Printf("components: %d\n", len(comps))
		for _, c := range comps {
			fmt.Printf("  [%d] size=%d:", c.ID, c.Size)
			for _, id := range c.Nodes {
				fmt.Printf(" %s", id)
			}
			fmt.Println()
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

func printTrace(show bool, lines []string) {
	if !show {
		return
	}
	fmt.Println("trace:")
	for _, line := range lines {
		fmt.Printf("  %s\n", line)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
