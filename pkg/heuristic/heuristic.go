package heuristic

import (
	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/geo"
)

// EuclideanDegrees estimates remaining cost as the straight-line distance between
// two vertices in coordinate-degree space scaled to km. vertices without a
// registered coordinate get estimate 0, which degrades the search to uniform-cost
// but keeps it correct.
type EuclideanDegrees struct {
	graph *da.Graph
}

func NewEuclideanDegrees(graph *da.Graph) *EuclideanDegrees {
	return &EuclideanDegrees{graph: graph}
}

func (h *EuclideanDegrees) Estimate(u, v da.Index) float64 {
	uCoord, uOk := h.graph.GetCoordinate(u)
	vCoord, vOk := h.graph.GetCoordinate(v)
	if !uOk || !vOk {
		return 0
	}
	return geo.CalculateEuclideanDegreeDistance(uCoord.GetLat(), uCoord.GetLon(),
		vCoord.GetLat(), vCoord.GetLon())
}

// Zero always estimates 0. plugging it into the A* engine yields uniform-cost
// search.
type Zero struct{}

func NewZero() Zero {
	return Zero{}
}

func (Zero) Estimate(u, v da.Index) float64 {
	return 0
}
