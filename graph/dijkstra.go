package graph

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrUnknownSource reports a shortest-path request for a source node
// that is not part of the graph.
var ErrUnknownSource = errors.New("graph: source node not in graph")

// Distances holds the minimum accumulated latency in milliseconds from
// a fixed source. Nodes with no directed path from the source are
// absent from the map; absence is the "infinite distance" state.
type Distances map[NodeID]float64

// Dist returns the shortest distance to n and whether n is reachable
// from the source at all.
func (d Distances) Dist(n NodeID) (float64, bool) {
	w, ok := d[n]
	return w, ok
}

// Predecessors maps each reached node to the node immediately before
// it on a shortest path from the source. The source itself and nodes
// never reached have no entry.
type Predecessors map[NodeID]NodeID

// ShortestPaths runs Dijkstra's algorithm from source over the latency
// graph and returns the distance and predecessor tables. Stale queue
// entries are skipped on pop rather than removed on improvement, so
// the queue may hold several entries per node. Neighbors are relaxed
// in sorted order, which makes repeated runs over the same graph yield
// identical tables even when distances tie.
//
// Weights must be non-negative; Build never records a negative weight.
func ShortestPaths(g Graph, source NodeID) (Distances, Predecessors, error) {
	if !g.HasNode(source) {
		return nil, nil, ErrUnknownSource
	}

	dist := Distances{source: 0}
	prev := make(Predecessors)

	pq := &latencyQueue{{node: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		if item.dist > dist[item.node] {
			continue
		}

		for _, neighbor := range sortedNeighbors(g[item.node]) {
			candidate := item.dist + g[item.node][neighbor]
			if best, seen := dist[neighbor]; !seen || candidate < best {
				dist[neighbor] = candidate
				prev[neighbor] = item.node
				heap.Push(pq, &queueItem{node: neighbor, dist: candidate})
			}
		}
	}

	return dist, prev, nil
}

func sortedNeighbors(edges map[NodeID]float64) []NodeID {
	out := make([]NodeID, 0, len(edges))
	for n := range edges {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type queueItem struct {
	node NodeID
	dist float64
}

type latencyQueue []*queueItem

func (q latencyQueue) Len() int { return len(q) }
func (q latencyQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].node < q[j].node
}
func (q latencyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *latencyQueue) Push(x interface{}) {
	*q = append(*q, x.(*queueItem))
}

func (q *latencyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
