package graph

import (
	"context"
	"errors"
	"testing"
)

// measureFromTable returns a MeasureFunc backed by a static latency
// table; pairs without an entry answer with an error.
func measureFromTable(table map[NodeID]map[NodeID]float64) MeasureFunc {
	return func(_ context.Context, src, dst NodeID) (float64, error) {
		if w, ok := table[src][dst]; ok {
			return w, nil
		}
		return 0, errors.New("no answer")
	}
}

func TestBuildEmptyNodeSet(t *testing.T) {
	g := Build(context.Background(), nil, measureFromTable(nil))
	if len(g) != 0 {
		t.Errorf("expected empty graph, got %v", g)
	}
}

func TestBuildRecordsSuccessfulProbes(t *testing.T) {
	table := map[NodeID]map[NodeID]float64{
		"A": {"B": 12.5},
		"B": {"A": 40},
	}

	g := Build(context.Background(), []NodeID{"A", "B"}, measureFromTable(table))

	if w := g["A"]["B"]; w != 12.5 {
		t.Errorf("expected edge A->B = 12.5, got %v", w)
	}
	if w := g["B"]["A"]; w != 40 {
		t.Errorf("expected edge B->A = 40, got %v", w)
	}
}

func TestBuildKeysCompleteWhenAllProbesFail(t *testing.T) {
	nodes := []NodeID{"A", "B", "C"}
	failing := func(_ context.Context, _, _ NodeID) (float64, error) {
		return 0, errors.New("unreachable")
	}

	g := Build(context.Background(), nodes, failing)

	if len(g) != len(nodes) {
		t.Fatalf("expected %d keys, got %d", len(nodes), len(g))
	}
	for _, n := range nodes {
		edges, ok := g[n]
		if !ok {
			t.Errorf("node %s missing from graph", n)
			continue
		}
		if len(edges) != 0 {
			t.Errorf("node %s should have no edges, got %v", n, edges)
		}
	}
}

func TestBuildCoversOrderedPairSpace(t *testing.T) {
	nodes := []NodeID{"A", "B", "C"}
	probed := make(map[[2]NodeID]int)

	Build(context.Background(), nodes, func(_ context.Context, src, dst NodeID) (float64, error) {
		probed[[2]NodeID{src, dst}]++
		return 1, nil
	})

	if len(probed) != len(nodes)*(len(nodes)-1) {
		t.Errorf("expected %d distinct probes, got %d", len(nodes)*(len(nodes)-1), len(probed))
	}
	for pair, count := range probed {
		if pair[0] == pair[1] {
			t.Errorf("probed self pair %v", pair)
		}
		if count != 1 {
			t.Errorf("pair %v probed %d times, failed probes must not be retried", pair, count)
		}
	}
}

func TestBuildDeduplicatesNodes(t *testing.T) {
	g := Build(context.Background(), []NodeID{"A", "A", "B"}, measureFromTable(nil))
	if len(g) != 2 {
		t.Errorf("expected 2 keys after dedupe, got %v", g.Nodes())
	}
}

func TestBuildIgnoresNegativeMeasurements(t *testing.T) {
	g := Build(context.Background(), []NodeID{"A", "B"}, func(_ context.Context, _, _ NodeID) (float64, error) {
		return -1, nil
	})
	if len(g["A"]) != 0 || len(g["B"]) != 0 {
		t.Errorf("negative measurements must not record edges, got %v", g)
	}
}
