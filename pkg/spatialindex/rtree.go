package spatialindex

import (
	"math"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[City]
}

// City is one indexed vertex: its name and coordinate, so the caller can rank
// candidates and hand the name straight to the search engine.
type City struct {
	name  string
	coord geo.Coordinate
}

func (c City) GetName() string {
	return c.name
}

func (c City) GetCoordinate() geo.Coordinate {
	return c.coord
}

func newCity(name string, coord geo.Coordinate) City {
	return City{name: name, coord: coord}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[City]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree over every vertex that carries a coordinate, each leaf
// having a bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *da.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	indexed := 0
	graph.ForVertices(func(u da.Index, name string) {
		coord, ok := graph.GetCoordinate(u)
		if !ok {
			return
		}

		lowerLat, lowerLon := geo.GetDestinationPoint(coord.GetLat(), coord.GetLon(), 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(coord.GetLat(), coord.GetLon(), 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
			newCity(name, coord))
		indexed++
	})

	log.Info("R-tree spatial index built.", zap.Int("indexed_cities", indexed))
}

// SearchWithinRadius search for all cities within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []City {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]City, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data City) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestCity snaps the query point to the closest indexed city, widening the
// search radius until a candidate appears. found is false only for an empty index.
func (rt *Rtree) NearestCity(qLat, qLon float64) (City, bool) {
	query := geo.NewCoordinate(qLat, qLon)

	for radius := 50.0; radius <= 6400.0; radius *= 2 {
		candidates := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDist := math.Inf(1)
		for _, c := range candidates {
			d := geo.AngleDistance(query, c.GetCoordinate())
			if d < bestDist {
				best = c
				bestDist = d
			}
		}
		return best, true
	}

	return City{}, false
}
