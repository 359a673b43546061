package datastructure

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphWriteReadRoundTrip(t *testing.T) {
	g := NewGraph()
	g.SetCoordinate("São Paulo", -23.5505, -46.6333)
	g.SetCoordinate("Rio de Janeiro", -22.9068, -43.1729)
	g.SetCoordinate("Belo Horizonte", -19.9167, -43.9345)
	g.AddVertex("Sem Coordenada")

	_, err := g.AddEdge("São Paulo", "Rio de Janeiro", 430)
	require.NoError(t, err)
	_, err = g.AddEdge("Rio de Janeiro", "Belo Horizonte", 440)
	require.NoError(t, err)
	_, err = g.AddEdge("São Paulo", "Belo Horizonte", 580)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "roundtrip.graph")
	require.NoError(t, g.WriteGraph(file))

	loaded, err := ReadGraph(file)
	require.NoError(t, err)

	require.Equal(t, g.NumberOfVertices(), loaded.NumberOfVertices())
	require.Equal(t, g.NumberOfEdges(), loaded.NumberOfEdges())

	// names with spaces survive the round trip
	neighbors := loaded.Neighbors("São Paulo")
	require.Len(t, neighbors, 2)

	for _, name := range []string{"São Paulo", "Rio de Janeiro", "Belo Horizonte"} {
		wantCoord, ok := g.CoordinateOf(name)
		require.True(t, ok)
		gotCoord, ok := loaded.CoordinateOf(name)
		require.True(t, ok)
		require.InDelta(t, wantCoord.GetLat(), gotCoord.GetLat(), 1e-12)
		require.InDelta(t, wantCoord.GetLon(), gotCoord.GetLon(), 1e-12)
	}

	_, ok := loaded.CoordinateOf("Sem Coordenada")
	require.False(t, ok)
}
