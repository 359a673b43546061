package engine

import (
	"time"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/engine/routing"
	"github.com/rotax-engine/rotax/pkg/heuristic"
	"github.com/rotax-engine/rotax/pkg/util"
	"go.uber.org/zap"
)

const (
	AlgorithmAStar    = "astar"
	AlgorithmDijkstra = "dijkstra"
)

// Engine bundles the immutable graph with its ready-to-query search algorithms.
type Engine struct {
	log   *zap.Logger
	graph *da.Graph

	astar    *routing.AStar
	dijkstra *routing.Dijkstra
}

func NewEngine(graph *da.Graph, log *zap.Logger) *Engine {
	return &Engine{
		log:      log,
		graph:    graph,
		astar:    routing.NewAStar(graph, heuristic.NewEuclideanDegrees(graph)),
		dijkstra: routing.NewDijkstra(graph),
	}
}

func (e *Engine) GetGraph() *da.Graph {
	return e.graph
}

func (e *Engine) Algorithm(name string) (routing.ShortestPathAlgorithm, error) {
	switch name {
	case AlgorithmAStar:
		return e.astar, nil
	case AlgorithmDijkstra:
		return e.dijkstra, nil
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown algorithm %q", name)
	}
}

// ShortestPath runs one query and measures its wall-clock duration with the
// monotonic clock. the search itself carries no timing concerns.
func (e *Engine) ShortestPath(algorithm, start, goal string) (routing.SearchResult, time.Duration, error) {
	alg, err := e.Algorithm(algorithm)
	if err != nil {
		return routing.SearchResult{}, 0, err
	}

	began := time.Now()
	result, err := alg.ShortestPath(start, goal)
	elapsed := time.Since(began)
	if err != nil {
		return routing.SearchResult{}, elapsed, err
	}

	return result, elapsed, nil
}
