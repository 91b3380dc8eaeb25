// Package graphql exposes the resilience engine over a static GraphQL
// schema: topology inspection plus the three analysis queries.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-resilience/pkg/analysis"
	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

// GenerateSchema builds the query schema over a topology store. Every
// analysis resolver works on a fresh snapshot, so concurrent queries never
// see a half-toggled graph.
func GenerateSchema(store *topology.Store) (graphql.Schema, error) {
	nodeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Node",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if n, ok := p.Source.(*topology.Node); ok {
						return string(n.ID), nil
					}
					return nil, nil
				},
			},
			"label": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if n, ok := p.Source.(*topology.Node); ok {
						return n.Label, nil
					}
					return nil, nil
				},
			},
			"kind": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if n, ok := p.Source.(*topology.Node); ok {
						return string(n.Kind), nil
					}
					return nil, nil
				},
			},
			"x": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if n, ok := p.Source.(*topology.Node); ok {
						return n.Position.X, nil
					}
					return nil, nil
				},
			},
			"y": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if n, ok := p.Source.(*topology.Node); ok {
						return n.Position.Y, nil
					}
					return nil, nil
				},
			},
			"isArticulationPoint": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if n, ok := p.Source.(*topology.Node); ok {
						return n.IsArticulationPoint, nil
					}
					return nil, nil
				},
			},
		},
	})

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Edge",
		Fields: graphql.Fields{
			"source": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(*topology.Edge); ok {
						return string(e.Source), nil
					}
					return nil, nil
				},
			},
			"target": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(*topology.Edge); ok {
						return string(e.Target), nil
					}
					return nil, nil
				},
			},
			"active": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(*topology.Edge); ok {
						return e.Active, nil
					}
					return nil, nil
				},
			},
			"isBridge": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(*topology.Edge); ok {
						return e.IsBridge, nil
					}
					return nil, nil
				},
			},
			"isRecovery": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(*topology.Edge); ok {
						return e.IsRecovery, nil
					}
					return nil, nil
				},
			},
		},
	})

	topologyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Topology",
		Fields: graphql.Fields{
			"nodes": &graphql.Field{
				Type: graphql.NewList(nodeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if g, ok := p.Source.(*topology.Graph); ok {
						return g.Nodes, nil
					}
					return nil, nil
				},
			},
			"edges": &graphql.Field{
				Type: graphql.NewList(edgeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if g, ok := p.Source.(*topology.Graph); ok {
						return g.Edges, nil
					}
					return nil, nil
				},
			},
		},
	})

	edgeRefType := graphql.NewObject(graphql.ObjectConfig{
		Name: "EdgeRef",
		Fields: graphql.Fields{
			"source": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if ref, ok := p.Source.(topology.EdgeRef); ok {
						return string(ref.Source), nil
					}
					return nil, nil
				},
			},
			"target": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if ref, ok := p.Source.(topology.EdgeRef); ok {
						return string(ref.Target), nil
					}
					return nil, nil
				},
			},
		},
	})

	criticalType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CriticalStructures",
		Fields: graphql.Fields{
			"bridges": &graphql.Field{
				Type: graphql.NewList(edgeRefType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.CriticalStructureResult); ok {
						return res.Bridges, nil
					}
					return nil, nil
				},
			},
			"articulationPoints": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.CriticalStructureResult); ok {
						return nodeIDStrings(res.ArticulationPoints), nil
					}
					return nil, nil
				},
			},
			"trace": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.CriticalStructureResult); ok {
						return res.Trace, nil
					}
					return nil, nil
				},
			},
		},
	})

	pathType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PathResult",
		Fields: graphql.Fields{
			"found": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.PathResult); ok {
						return res.Found, nil
					}
					return nil, nil
				},
			},
			"path": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.PathResult); ok {
						return nodeIDStrings(res.Path), nil
					}
					return nil, nil
				},
			},
			"hops": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.PathResult); ok {
						return res.Hops, nil
					}
					return nil, nil
				},
			},
			"trace": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.PathResult); ok {
						return res.Trace, nil
					}
					return nil, nil
				},
			},
		},
	})

	recoveryEdgeList := graphql.NewList(edgeType)
	recoveryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RecoveryPlan",
		Fields: graphql.Fields{
			"hub": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.RecoveryResult); ok {
						return string(res.Hub), nil
					}
					return nil, nil
				},
			},
			"disconnectedNodes": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.RecoveryResult); ok {
						return nodeIDStrings(res.DisconnectedNodes), nil
					}
					return nil, nil
				},
			},
			"recoveryEdges": &graphql.Field{
				Type: recoveryEdgeList,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.RecoveryResult); ok {
						edges := make([]*topology.Edge, len(res.RecoveryEdges))
						for i := range res.RecoveryEdges {
							edges[i] = &res.RecoveryEdges[i]
						}
						return edges, nil
					}
					return nil, nil
				},
			},
			"trace": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if res, ok := p.Source.(*analysis.RecoveryResult); ok {
						return res.Trace, nil
					}
					return nil, nil
				},
			},
		},
	})

	componentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Component",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c, ok := p.Source.(analysis.Component); ok {
						return c.ID, nil
					}
					return nil, nil
				},
			},
			"nodes": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c, ok := p.Source.(analysis.Component); ok {
						return nodeIDStrings(c.Nodes), nil
					}
					return nil, nil
				},
			},
			"size": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c, ok := p.Source.(analysis.Component); ok {
						return c.Size, nil
					}
					return nil, nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "ok", nil
				},
			},
			"topology": &graphql.Field{
				Type: topologyType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.Snapshot()
				},
			},
			"criticalStructures": &graphql.Field{
				Type: criticalType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					g, err := store.Snapshot()
					if err != nil {
						return nil, err
					}
					return analysis.AnalyzeCriticalStructures(g)
				},
			},
			"shortestPath": &graphql.Field{
				Type: pathType,
				Args: graphql.FieldConfigArgument{
					"source": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
					"target": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					source, _ := p.Args["source"].(string)
					target, _ := p.Args["target"].(string)
					g, err := store.Snapshot()
					if err != nil {
						return nil, err
					}
					return analysis.FindShortestPath(g,
						topology.NodeID(source), topology.NodeID(target))
				},
			},
			"recoveryPlan": &graphql.Field{
				Type: recoveryType,
				Args: graphql.FieldConfigArgument{
					"hubId": &graphql.ArgumentConfig{
						Type: graphql.ID,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					hubID, _ := p.Args["hubId"].(string)
					g, err := store.Snapshot()
					if err != nil {
						return nil, err
					}
					return analysis.PlanRecovery(g, topology.NodeID(hubID))
				},
			},
			"components": &graphql.Field{
				Type: graphql.NewList(componentType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					g, err := store.Snapshot()
					if err != nil {
						return nil, err
					}
					return analysis.ConnectedComponents(g), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}

	return schema, nil
}

func nodeIDStrings(ids []topology.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
