package graph

import "errors"

// ErrPredecessorCycle reports a malformed predecessor table whose
// back-links never terminate. ShortestPaths cannot produce one; hitting
// this error indicates a programming defect, not an unreachable node.
var ErrPredecessorCycle = errors.New("graph: predecessor links form a cycle")

// ReconstructPath walks predecessor links backward from destination
// and returns the node sequence from the source to destination.
//
// A destination that was never reached has no predecessor and yields
// the single-element sequence [destination]; callers must check the
// destination's distance first and treat an absent distance as
// "no path available" instead of trusting that sequence.
func ReconstructPath(prev Predecessors, destination NodeID) ([]NodeID, error) {
	path := []NodeID{destination}
	current := destination

	// A well-formed table yields at most len(prev) back-links.
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[current]
		if !ok {
			return path, nil
		}
		path = append([]NodeID{p}, path...)
		current = p
	}
	return nil, ErrPredecessorCycle
}
