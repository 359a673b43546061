package datastructure

import (
	"errors"
	"math"

	"github.com/rotax-engine/rotax/pkg/geo"
)

type Index uint32

const INVALID_VERTEX_ID Index = Index(math.MaxUint32)

var (
	ErrInvalidWeight = errors.New("edge weight must be non-negative")
	ErrUnknownNode   = errors.New("node is not present in the graph")
)

type OutEdge struct {
	head   Index
	weight float64
}

func NewOutEdge(head Index, weight float64) OutEdge {
	return OutEdge{head: head, weight: weight}
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

// Neighbor is the name-keyed view of an adjacency entry.
type Neighbor struct {
	Name   string
	Weight float64
}

// Graph stores an undirected weighted graph over named vertices. names are mapped
// to dense vertex ids, adjacency is a per-vertex slice of out edges mirrored in
// both directions. built once, read-only during searches.
type Graph struct {
	vertexIds map[string]Index
	names     []string

	adj [][]OutEdge

	coords   []geo.Coordinate
	hasCoord []bool

	numEdges int
}

func NewGraph() *Graph {
	return &Graph{
		vertexIds: make(map[string]Index),
		names:     make([]string, 0),
		adj:       make([][]OutEdge, 0),
		coords:    make([]geo.Coordinate, 0),
		hasCoord:  make([]bool, 0),
	}
}

// AddVertex registers name and returns its id. idempotent.
func (g *Graph) AddVertex(name string) Index {
	if id, ok := g.vertexIds[name]; ok {
		return id
	}
	id := Index(len(g.names))
	g.vertexIds[name] = id
	g.names = append(g.names, name)
	g.adj = append(g.adj, nil)
	g.coords = append(g.coords, geo.Coordinate{})
	g.hasCoord = append(g.hasCoord, false)
	return id
}

func (g *Graph) GetVertexId(name string) (Index, bool) {
	id, ok := g.vertexIds[name]
	return id, ok
}

func (g *Graph) GetVertexName(id Index) string {
	return g.names[id]
}

// AddEdge registers the undirected edge {from, to} with the given weight, creating
// missing vertices. weight lookup returns the same value in both directions. when
// the edge already exists its weight is overwritten (last write wins) and
// overwrote is true, so the caller can log redundant registrations.
func (g *Graph) AddEdge(from, to string, weight float64) (overwrote bool, err error) {
	if weight < 0 {
		return false, ErrInvalidWeight
	}

	u := g.AddVertex(from)
	v := g.AddVertex(to)

	overwrote = g.setArc(u, v, weight)
	g.setArc(v, u, weight)
	if !overwrote {
		g.numEdges++
	}
	return overwrote, nil
}

func (g *Graph) setArc(u, v Index, weight float64) bool {
	for i := range g.adj[u] {
		if g.adj[u][i].head == v {
			g.adj[u][i].weight = weight
			return true
		}
	}
	g.adj[u] = append(g.adj[u], NewOutEdge(v, weight))
	return false
}

// Neighbors returns the adjacency of name with edge weights. unknown and isolated
// vertices both yield an empty slice, never an error.
func (g *Graph) Neighbors(name string) []Neighbor {
	u, ok := g.vertexIds[name]
	if !ok {
		return []Neighbor{}
	}
	neighbors := make([]Neighbor, 0, len(g.adj[u]))
	for _, e := range g.adj[u] {
		neighbors = append(neighbors, Neighbor{Name: g.names[e.head], Weight: e.weight})
	}
	return neighbors
}

// ForNeighborsOf visits the out edges of u in insertion order.
func (g *Graph) ForNeighborsOf(u Index, fn func(e *OutEdge)) {
	for i := range g.adj[u] {
		fn(&g.adj[u][i])
	}
}

func (g *Graph) SetCoordinate(name string, lat, lon float64) {
	u := g.AddVertex(name)
	g.coords[u] = geo.NewCoordinate(lat, lon)
	g.hasCoord[u] = true
}

func (g *Graph) GetCoordinate(u Index) (geo.Coordinate, bool) {
	return g.coords[u], g.hasCoord[u]
}

func (g *Graph) CoordinateOf(name string) (geo.Coordinate, bool) {
	u, ok := g.vertexIds[name]
	if !ok {
		return geo.Coordinate{}, false
	}
	return g.coords[u], g.hasCoord[u]
}

func (g *Graph) NumberOfVertices() int {
	return len(g.names)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// ForVertices visits every vertex id with its name.
func (g *Graph) ForVertices(fn func(u Index, name string)) {
	for i, name := range g.names {
		fn(Index(i), name)
	}
}
