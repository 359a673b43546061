package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/engine"
	"github.com/rotax-engine/rotax/pkg/spatialindex"
	"github.com/rotax-engine/rotax/pkg/util"
)

func buildService(t *testing.T) *RoutingService {
	t.Helper()

	g := da.NewGraph()
	g.SetCoordinate("São Paulo", -23.5505, -46.6333)
	g.SetCoordinate("Rio de Janeiro", -22.9068, -43.1729)
	g.SetCoordinate("Belo Horizonte", -19.9167, -43.9345)

	for _, e := range []struct {
		from, to string
		weight   float64
	}{
		{"São Paulo", "Rio de Janeiro", 430},
		{"Rio de Janeiro", "Belo Horizonte", 440},
		{"São Paulo", "Belo Horizonte", 580},
	} {
		_, err := g.AddEdge(e.from, e.to, e.weight)
		require.NoError(t, err)
	}

	rt := spatialindex.NewRtree()
	rt.Build(g, 50.0, zap.NewNop())

	return NewRoutingService(zap.NewNop(), engine.NewEngine(g, zap.NewNop()), rt)
}

func TestRoute(t *testing.T) {
	service := buildService(t)

	result, duration, polyline, err := service.Route(engine.AlgorithmAStar, "São Paulo", "Belo Horizonte")
	require.NoError(t, err)
	require.True(t, result.Found())
	require.InDelta(t, 580, result.Cost(), 1e-9)
	require.GreaterOrEqual(t, duration.Nanoseconds(), int64(0))
	require.NotEmpty(t, polyline)
}

func TestRouteUnknownCity(t *testing.T) {
	service := buildService(t)

	_, _, _, err := service.Route(engine.AlgorithmAStar, "Atlantis", "Belo Horizonte")
	require.Error(t, err)

	var wrapped *util.Error
	require.ErrorAs(t, err, &wrapped)
	require.Equal(t, util.ErrBadParamInput, wrapped.Code())
}

func TestRouteUnknownAlgorithm(t *testing.T) {
	service := buildService(t)

	_, _, _, err := service.Route("bellman-ford", "São Paulo", "Belo Horizonte")
	require.Error(t, err)
}

func TestNearestRouteSnapsBothEndpoints(t *testing.T) {
	service := buildService(t)

	// campinas-ish origin snaps to são paulo, niterói-ish destination to rio
	result, _, polyline, snappedStart, snappedGoal, err := service.NearestRoute(
		engine.AlgorithmAStar, -22.9099, -47.0626, -22.8832, -43.1034)
	require.NoError(t, err)
	require.True(t, result.Found())
	require.Equal(t, "São Paulo", snappedStart)
	require.Equal(t, "Rio de Janeiro", snappedGoal)
	require.InDelta(t, 430, result.Cost(), 1e-9)
	require.NotEmpty(t, polyline)
}
