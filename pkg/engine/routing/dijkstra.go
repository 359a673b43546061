package routing

import (
	da "github.com/rotax-engine/rotax/pkg/datastructure"
)

type zeroHeuristic struct{}

func (zeroHeuristic) Estimate(u, v da.Index) float64 {
	return 0
}

// Dijkstra is uniform-cost search: the A* engine with a zero heuristic. it is the
// exhaustive reference the optimality tests compare A* against, and is selectable
// in the bench harness.
type Dijkstra struct {
	inner *AStar
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		inner: NewAStar(graph, zeroHeuristic{}),
	}
}

func (rt *Dijkstra) ShortestPath(start, goal string) (SearchResult, error) {
	return rt.inner.ShortestPath(start, goal)
}
