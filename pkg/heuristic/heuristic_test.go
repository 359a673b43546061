package heuristic

import (
	"math"
	"testing"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
)

func buildGraph() (*da.Graph, da.Index, da.Index, da.Index) {
	g := da.NewGraph()
	g.SetCoordinate("São Paulo", -23.5505, -46.6333)
	g.SetCoordinate("Belo Horizonte", -19.9167, -43.9345)
	g.AddVertex("Sem Coordenada")

	sp, _ := g.GetVertexId("São Paulo")
	bh, _ := g.GetVertexId("Belo Horizonte")
	nc, _ := g.GetVertexId("Sem Coordenada")
	return g, sp, bh, nc
}

func TestEuclideanDegreesEstimate(t *testing.T) {
	g, sp, bh, nc := buildGraph()
	h := NewEuclideanDegrees(g)

	if est := h.Estimate(sp, sp); est != 0 {
		t.Fatalf("h(x,x) = %f, want 0", est)
	}

	forward := h.Estimate(sp, bh)
	backward := h.Estimate(bh, sp)
	if math.Abs(forward-backward) > 1e-9 {
		t.Fatalf("heuristic must be symmetric: %f != %f", forward, backward)
	}
	if forward <= 0 {
		t.Fatalf("h(São Paulo, Belo Horizonte) = %f, want > 0", forward)
	}

	// missing coordinate on either side degrades the estimate to 0
	if est := h.Estimate(sp, nc); est != 0 {
		t.Fatalf("estimate with missing goal coordinate = %f, want 0", est)
	}
	if est := h.Estimate(nc, bh); est != 0 {
		t.Fatalf("estimate with missing start coordinate = %f, want 0", est)
	}
}

func TestZeroEstimate(t *testing.T) {
	_, sp, bh, _ := buildGraph()

	h := NewZero()
	if est := h.Estimate(sp, bh); est != 0 {
		t.Fatalf("zero heuristic estimate = %f, want 0", est)
	}
}
