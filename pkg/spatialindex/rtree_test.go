package spatialindex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
)

func buildIndex(t *testing.T) *Rtree {
	t.Helper()

	g := da.NewGraph()
	g.SetCoordinate("São Paulo", -23.5505, -46.6333)
	g.SetCoordinate("Rio de Janeiro", -22.9068, -43.1729)
	g.SetCoordinate("Belo Horizonte", -19.9167, -43.9345)
	g.SetCoordinate("Manaus", -3.119, -60.0217)
	g.AddVertex("Sem Coordenada")

	rt := NewRtree()
	rt.Build(g, 50.0, zap.NewNop())
	return rt
}

func TestNearestCity(t *testing.T) {
	rt := buildIndex(t)

	testCases := []struct {
		name     string
		lat, lon float64
		expected string
	}{
		{name: "downtown são paulo", lat: -23.56, lon: -46.64, expected: "São Paulo"},
		{name: "campinas snaps to são paulo", lat: -22.9099, lon: -47.0626, expected: "São Paulo"},
		{name: "niterói snaps to rio", lat: -22.8832, lon: -43.1034, expected: "Rio de Janeiro"},
		{name: "amazon interior snaps to manaus", lat: -4.5, lon: -61.0, expected: "Manaus"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			city, ok := rt.NearestCity(tt.lat, tt.lon)
			require.True(t, ok)
			require.Equal(t, tt.expected, city.GetName())
		})
	}
}

func TestNearestCityOnEmptyIndex(t *testing.T) {
	rt := NewRtree()
	rt.Build(da.NewGraph(), 50.0, zap.NewNop())

	_, ok := rt.NearestCity(-23.55, -46.63)
	require.False(t, ok)
}

func TestSearchWithinRadius(t *testing.T) {
	rt := buildIndex(t)

	// SP and RJ are ~360 km apart, both inside a 500 km box around são paulo
	cities := rt.SearchWithinRadius(-23.5505, -46.6333, 500)
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.GetName())
	}
	require.Contains(t, names, "São Paulo")
	require.Contains(t, names, "Rio de Janeiro")
	require.NotContains(t, names, "Manaus")
}
