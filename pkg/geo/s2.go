package geo

import (
	"github.com/golang/geo/s2"
)

// AngleDistance returns the spherical angle between two coordinates. cheaper to
// compare than haversine when only the ordering matters (nearest-city ranking).
func AngleDistance(a, b Coordinate) float64 {
	aLatLng := s2.LatLngFromDegrees(a.Lat, a.Lon)
	bLatLng := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return float64(aLatLng.Distance(bLatLng))
}
