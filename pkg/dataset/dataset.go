package dataset

import (
	"encoding/json"
	"os"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/geo"
	"go.uber.org/zap"
)

type CityCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Road struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type TestRoute struct {
	Start string `json:"start"`
	Goal  string `json:"goal"`
}

// Dataset mirrors the brazil_cities json file: city coordinates, undirected road
// distances and the start/goal pairs the bench harness runs.
type Dataset struct {
	Cities     map[string]CityCoordinate `json:"cities"`
	Roads      []Road                    `json:"roads"`
	TestRoutes []TestRoute               `json:"test_routes"`
}

func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// BuildGraph constructs the immutable search graph. duplicate road rows overwrite
// the earlier weight (last write wins) with a warning, so datasets that register
// both directions explicitly still load.
func (d *Dataset) BuildGraph(log *zap.Logger) (*da.Graph, error) {
	graph := da.NewGraph()

	for name, coord := range d.Cities {
		graph.SetCoordinate(name, coord.Lat, coord.Lng)
	}

	for _, road := range d.Roads {
		overwrote, err := graph.AddEdge(road.From, road.To, road.Distance)
		if err != nil {
			return nil, err
		}
		if overwrote {
			log.Warn("duplicate road registration, last write wins",
				zap.String("from", road.From),
				zap.String("to", road.To),
				zap.Float64("distance", road.Distance))
		}
	}

	d.auditAdmissibility(graph, log)

	return graph, nil
}

// auditAdmissibility checks the modeling assumption behind the straight-line
// heuristic: every road must be at least as long as the scaled straight-line
// distance between its endpoints, otherwise the search may return suboptimal
// paths for routes crossing that road.
func (d *Dataset) auditAdmissibility(graph *da.Graph, log *zap.Logger) {
	for _, road := range d.Roads {
		fromCoord, fromOk := graph.CoordinateOf(road.From)
		toCoord, toOk := graph.CoordinateOf(road.To)
		if !fromOk || !toOk {
			continue
		}

		lowerBound := geo.CalculateEuclideanDegreeDistance(fromCoord.GetLat(), fromCoord.GetLon(),
			toCoord.GetLat(), toCoord.GetLon())
		if road.Distance < lowerBound {
			log.Warn("road distance undercuts the straight-line heuristic, optimality is not guaranteed",
				zap.String("from", road.From),
				zap.String("to", road.To),
				zap.Float64("distance", road.Distance),
				zap.Float64("heuristic_lower_bound", lowerBound),
				zap.Float64("haversine_km", geo.CalculateHaversineDistance(fromCoord.GetLat(), fromCoord.GetLon(),
					toCoord.GetLat(), toCoord.GetLon())))
		}
	}
}
