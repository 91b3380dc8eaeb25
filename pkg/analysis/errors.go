// Package analysis implements the resilience engine: critical-structure
// detection (bridges, articulation points), minimum-hop path search, and
// recovery planning for nodes cut off from the hub. Every entry point takes
// a graph snapshot and returns a fresh result plus an ordered trace; no
// state survives between calls, so concurrent invocations on independent
// snapshots need no synchronization.
package analysis

import "errors"

// ErrEmptyGraph is returned when an operation that needs at least one node
// is given a topology with none.
var ErrEmptyGraph = errors.New("topology has no nodes")
