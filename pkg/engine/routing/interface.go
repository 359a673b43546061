package routing

import (
	da "github.com/rotax-engine/rotax/pkg/datastructure"
)

// Heuristic estimates the remaining cost from u to v. it must never overestimate
// the true remaining path cost for the search to guarantee optimality.
type Heuristic interface {
	Estimate(u, v da.Index) float64
}

type ShortestPathAlgorithm interface {
	ShortestPath(start, goal string) (SearchResult, error)
}
