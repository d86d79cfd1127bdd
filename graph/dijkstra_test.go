package graph

import (
	"reflect"
	"testing"
)

// equalPath compares two node sequences for equality.
func equalPath(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShortestPathsLinear(t *testing.T) {
	g := Graph{
		"A": {"B": 5},
		"B": {"C": 3},
		"C": {},
	}

	dist, prev, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	want := Distances{"A": 0, "B": 5, "C": 8}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("expected distances %v, got %v", want, dist)
	}

	path, err := ReconstructPath(prev, "C")
	if err != nil {
		t.Fatalf("ReconstructPath returned error: %v", err)
	}
	if !equalPath(path, []NodeID{"A", "B", "C"}) {
		t.Errorf("expected path [A B C], got %v", path)
	}
}

func TestShortestPathsPrefersCheaperRoute(t *testing.T) {
	// The indirect route A->B->C costs 2, beating the direct edge A->C.
	g := Graph{
		"A": {"B": 1, "C": 4},
		"B": {"C": 1},
		"C": {},
	}

	dist, prev, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	if d, ok := dist.Dist("C"); !ok || d != 2 {
		t.Errorf("expected distance 2 to C, got %v (reachable=%v)", d, ok)
	}

	path, err := ReconstructPath(prev, "C")
	if err != nil {
		t.Fatalf("ReconstructPath returned error: %v", err)
	}
	if !equalPath(path, []NodeID{"A", "B", "C"}) {
		t.Errorf("expected path [A B C], got %v", path)
	}
}

func TestShortestPathsDisconnected(t *testing.T) {
	g := Graph{
		"A": {"B": 5},
		"B": {},
		"C": {},
	}

	dist, prev, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	if _, ok := dist.Dist("C"); ok {
		t.Errorf("expected C to be unreachable, got distance %v", dist["C"])
	}
	if _, ok := prev["C"]; ok {
		t.Errorf("expected no predecessor for unreached C, got %v", prev["C"])
	}
}

func TestShortestPathsSourceProperties(t *testing.T) {
	g := Graph{
		"A": {"B": 2},
		"B": {"A": 7},
	}

	dist, prev, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	if d, ok := dist.Dist("A"); !ok || d != 0 {
		t.Errorf("expected distance 0 to source, got %v (reachable=%v)", d, ok)
	}
	if _, ok := prev["A"]; ok {
		t.Errorf("source must have no predecessor, got %v", prev["A"])
	}
}

func TestShortestPathsNoEdges(t *testing.T) {
	g := Graph{"A": {}, "B": {}, "C": {}}

	dist, prev, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	if len(dist) != 1 {
		t.Errorf("expected only the source to be reachable, got %v", dist)
	}
	if len(prev) != 0 {
		t.Errorf("expected empty predecessor table, got %v", prev)
	}
}

func TestShortestPathsAsymmetricEdges(t *testing.T) {
	g := Graph{
		"A": {"B": 10},
		"B": {"A": 1},
	}

	dist, _, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}
	if d, _ := dist.Dist("B"); d != 10 {
		t.Errorf("expected forward distance 10, got %v", d)
	}

	back, _, err := ShortestPaths(g, "B")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}
	if d, _ := back.Dist("A"); d != 1 {
		t.Errorf("expected reverse distance 1, got %v", d)
	}
}

func TestShortestPathsUnknownSource(t *testing.T) {
	g := Graph{"A": {}}

	if _, _, err := ShortestPaths(g, "Z"); err != ErrUnknownSource {
		t.Errorf("expected ErrUnknownSource, got %v", err)
	}
}

func TestShortestPathsIdempotent(t *testing.T) {
	// Two equal-cost routes to D; repeated runs must pick the same one.
	g := Graph{
		"A": {"B": 1, "C": 1},
		"B": {"D": 1},
		"C": {"D": 1},
		"D": {},
	}

	dist1, prev1, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}
	dist2, prev2, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	if !reflect.DeepEqual(dist1, dist2) {
		t.Errorf("distances differ between runs: %v vs %v", dist1, dist2)
	}
	if !reflect.DeepEqual(prev1, prev2) {
		t.Errorf("predecessors differ between runs: %v vs %v", prev1, prev2)
	}
}

func TestShortestPathsPathConsistency(t *testing.T) {
	g := Graph{
		"A": {"B": 2.5, "D": 9},
		"B": {"C": 1.25, "D": 4},
		"C": {"D": 0.75},
		"D": {},
	}

	dist, prev, err := ShortestPaths(g, "A")
	if err != nil {
		t.Fatalf("ShortestPaths returned error: %v", err)
	}

	for node := range dist {
		path, err := ReconstructPath(prev, node)
		if err != nil {
			t.Fatalf("ReconstructPath(%s) returned error: %v", node, err)
		}
		if path[0] != "A" || path[len(path)-1] != node {
			t.Errorf("path to %s has wrong endpoints: %v", node, path)
		}

		var sum float64
		for i := 0; i+1 < len(path); i++ {
			w, ok := g[path[i]][path[i+1]]
			if !ok {
				t.Fatalf("path to %s uses missing edge %s->%s", node, path[i], path[i+1])
			}
			sum += w
		}
		if sum != dist[node] {
			t.Errorf("path to %s sums to %v, distance table says %v", node, sum, dist[node])
		}
	}
}
