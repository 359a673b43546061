package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleJSON = `{
  "cities": {
    "São Paulo": { "lat": -23.5505, "lng": -46.6333 },
    "Rio de Janeiro": { "lat": -22.9068, "lng": -43.1729 },
    "Belo Horizonte": { "lat": -19.9167, "lng": -43.9345 }
  },
  "roads": [
    { "from": "São Paulo", "to": "Rio de Janeiro", "distance": 430 },
    { "from": "Rio de Janeiro", "to": "São Paulo", "distance": 430 },
    { "from": "Rio de Janeiro", "to": "Belo Horizonte", "distance": 440 }
  ],
  "test_routes": [
    { "start": "São Paulo", "goal": "Belo Horizonte" }
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(file, []byte(sampleJSON), 0644))
	return file
}

func TestLoad(t *testing.T) {
	d, err := Load(writeSample(t))
	require.NoError(t, err)

	require.Len(t, d.Cities, 3)
	require.Len(t, d.Roads, 3)
	require.Len(t, d.TestRoutes, 1)
	require.Equal(t, "São Paulo", d.TestRoutes[0].Start)
	require.Equal(t, "Belo Horizonte", d.TestRoutes[0].Goal)
	require.InDelta(t, -23.5505, d.Cities["São Paulo"].Lat, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestBuildGraph(t *testing.T) {
	d, err := Load(writeSample(t))
	require.NoError(t, err)

	graph, err := d.BuildGraph(zap.NewNop())
	require.NoError(t, err)

	require.Equal(t, 3, graph.NumberOfVertices())
	// the redundant reverse registration collapses onto the same undirected edge
	require.Equal(t, 2, graph.NumberOfEdges())

	neighbors := graph.Neighbors("Rio de Janeiro")
	require.Len(t, neighbors, 2)

	coord, ok := graph.CoordinateOf("Belo Horizonte")
	require.True(t, ok)
	require.InDelta(t, -19.9167, coord.GetLat(), 1e-9)
}

func TestBuildGraphRejectsNegativeDistance(t *testing.T) {
	d := &Dataset{
		Roads: []Road{{From: "a", To: "b", Distance: -5}},
	}

	_, err := d.BuildGraph(zap.NewNop())
	require.Error(t, err)
}
