// Package graph builds weighted latency graphs from pairwise probe
// measurements and computes lowest-latency paths over them. The
// package is pure computation: it performs no I/O beyond invoking the
// measurement capability handed to Build.
package graph

import (
	"context"
	"sort"
)

// NodeID uniquely names a participant in the overlay network.
type NodeID string

// Graph maps each node to its measured outgoing edges, keyed by
// neighbor with the one-way latency in milliseconds as value. A
// missing neighbor key means no measurement succeeded for that pair;
// absence is never stored as a zero or infinite weight. Edges are
// directional and the two directions of a pair may carry different
// weights.
type Graph map[NodeID]map[NodeID]float64

// MeasureFunc probes the one-way latency in milliseconds from src to
// dst. Returning an error means the pair got no answer and records no
// edge.
type MeasureFunc func(ctx context.Context, src, dst NodeID) (float64, error)

// Build probes every ordered pair of distinct nodes and assembles the
// latency graph. Every input node is a key of the result even when all
// of its probes fail, and a failed probe never aborts the remaining
// pairs. Duplicate node identifiers are collapsed. Pairs are probed in
// sorted node order so a run is deterministic.
func Build(ctx context.Context, nodes []NodeID, measure MeasureFunc) Graph {
	g := make(Graph, len(nodes))
	for _, n := range nodes {
		if _, ok := g[n]; !ok {
			g[n] = make(map[NodeID]float64)
		}
	}

	ordered := g.Nodes()
	for _, src := range ordered {
		for _, dst := range ordered {
			if src == dst {
				continue
			}
			w, err := measure(ctx, src, dst)
			if err != nil || w < 0 {
				continue
			}
			g[src][dst] = w
		}
	}
	return g
}

// Nodes returns the node set in sorted order.
func (g Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g))
	for n := range g {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasNode reports whether id is a node of the graph.
func (g Graph) HasNode(id NodeID) bool {
	_, ok := g[id]
	return ok
}
