package usecases

import (
	"time"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/engine/routing"
	"github.com/rotax-engine/rotax/pkg/spatialindex"
)

type RoutingEngine interface {
	GetGraph() *da.Graph
	ShortestPath(algorithm, start, goal string) (routing.SearchResult, time.Duration, error)
}

type SpatialIndex interface {
	NearestCity(lat, lon float64) (spatialindex.City, bool)
}
