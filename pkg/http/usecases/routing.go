package usecases

import (
	"time"

	"github.com/rotax-engine/rotax/pkg/engine/routing"
	"github.com/rotax-engine/rotax/pkg/geo"
	"github.com/rotax-engine/rotax/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
	}
}

// Route runs one shortest-path query between two dataset cities and encodes the
// resulting path geometry as a polyline.
func (rs *RoutingService) Route(algorithm, start, goal string) (routing.SearchResult, time.Duration, string, error) {
	result, duration, err := rs.engine.ShortestPath(algorithm, start, goal)
	if err != nil {
		return routing.SearchResult{}, duration, "", err
	}

	rs.log.Info("route query",
		zap.String("start", start),
		zap.String("goal", goal),
		zap.String("algorithm", algorithm),
		zap.Bool("found", result.Found()),
		zap.Float64("cost_km", result.Cost()),
		zap.Int("nodes_expanded", result.NodesExpanded()),
		zap.Duration("took", duration))

	return result, duration, rs.pathPolyline(result), nil
}

// NearestRoute snaps both coordinates to the closest dataset city through the
// spatial index and routes between the snapped cities.
func (rs *RoutingService) NearestRoute(algorithm string, origLat, origLon, dstLat, dstLon float64) (routing.SearchResult,
	time.Duration, string, string, string, error) {
	origin, ok := rs.spatialIndex.NearestCity(origLat, origLon)
	if !ok {
		return routing.SearchResult{}, 0, "", "", "", util.WrapErrorf(nil, util.ErrNotFound,
			"no city found near %f,%f", origLat, origLon)
	}
	destination, ok := rs.spatialIndex.NearestCity(dstLat, dstLon)
	if !ok {
		return routing.SearchResult{}, 0, "", "", "", util.WrapErrorf(nil, util.ErrNotFound,
			"no city found near %f,%f", dstLat, dstLon)
	}

	result, duration, polyline, err := rs.Route(algorithm, origin.GetName(), destination.GetName())
	if err != nil {
		return routing.SearchResult{}, duration, "", "", "", err
	}

	return result, duration, polyline, origin.GetName(), destination.GetName(), nil
}

func (rs *RoutingService) pathPolyline(result routing.SearchResult) string {
	if !result.Found() {
		return ""
	}

	graph := rs.engine.GetGraph()
	coords := make([]geo.Coordinate, 0, result.Steps())
	for _, name := range result.Path() {
		coord, ok := graph.CoordinateOf(name)
		if !ok {
			// vertices without coordinates have no geometry to encode
			return ""
		}
		coords = append(coords, coord)
	}
	return geo.PolylineFromCoords(coords)
}
