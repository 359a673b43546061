package geo

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestEuclideanDegreeDistance(t *testing.T) {
	testCases := []struct {
		name                           string
		latOne, lonOne, latTwo, lonTwo float64
		expected                       float64
	}{
		{
			name:   "same point",
			latOne: -23.55, lonOne: -46.63, latTwo: -23.55, lonTwo: -46.63,
			expected: 0,
		},
		{
			name:   "one degree of latitude",
			latOne: 0, lonOne: 0, latTwo: 1, lonTwo: 0,
			expected: 111.0,
		},
		{
			name:   "3-4-5 triangle in degree space",
			latOne: 0, lonOne: 0, latTwo: 3, lonTwo: 4,
			expected: 555.0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateEuclideanDegreeDistance(tt.latOne, tt.lonOne, tt.latTwo, tt.lonTwo)
			if math.Abs(got-tt.expected) > eps {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestEuclideanDegreeDistanceSymmetric(t *testing.T) {
	forward := CalculateEuclideanDegreeDistance(-23.5505, -46.6333, -19.9167, -43.9345)
	backward := CalculateEuclideanDegreeDistance(-19.9167, -43.9345, -23.5505, -46.6333)
	if math.Abs(forward-backward) > eps {
		t.Errorf("heuristic distance must be symmetric: %f != %f", forward, backward)
	}
}

func TestHaversineDistance(t *testing.T) {
	// São Paulo - Rio de Janeiro is roughly 360 km great-circle
	got := CalculateHaversineDistance(-23.5505, -46.6333, -22.9068, -43.1729)
	if got < 330 || got > 390 {
		t.Errorf("haversine SP-RJ = %f km, want ~360", got)
	}

	if d := CalculateHaversineDistance(-23.55, -46.63, -23.55, -46.63); math.Abs(d) > eps {
		t.Errorf("haversine of a point with itself = %f, want 0", d)
	}
}

func TestStraightLineTracksGeodesic(t *testing.T) {
	// the degree-space estimate overshoots the geodesic slightly away from the
	// equator (longitude degrees shrink with latitude). admissibility rests on
	// road distances exceeding the estimate, which needs the overshoot to stay
	// small in the dataset's latitude band.
	coords := []Coordinate{
		NewCoordinate(-23.5505, -46.6333),
		NewCoordinate(-22.9068, -43.1729),
		NewCoordinate(-19.9167, -43.9345),
		NewCoordinate(-15.7939, -47.8828),
		NewCoordinate(-30.0346, -51.2177),
		NewCoordinate(-12.9777, -38.5016),
	}

	for i := range coords {
		for j := range coords {
			if i == j {
				continue
			}
			euclid := CalculateEuclideanDegreeDistance(coords[i].GetLat(), coords[i].GetLon(),
				coords[j].GetLat(), coords[j].GetLon())
			hav := CalculateHaversineDistance(coords[i].GetLat(), coords[i].GetLon(),
				coords[j].GetLat(), coords[j].GetLon())
			if euclid > hav*1.25 {
				t.Errorf("straight-line estimate %f way above geodesic %f for pair %d,%d", euclid, hav, i, j)
			}
		}
	}
}
