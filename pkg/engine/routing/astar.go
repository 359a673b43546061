package routing

import (
	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/util"
)

// AStar runs best-first search keyed by f = g + h over an immutable graph. the
// engine itself holds only read-only state, so independent queries may run
// concurrently, each ShortestPath call allocating its own frontier and labels.
type AStar struct {
	graph     *da.Graph
	heuristic Heuristic
}

func NewAStar(graph *da.Graph, heuristic Heuristic) *AStar {
	return &AStar{
		graph:     graph,
		heuristic: heuristic,
	}
}

type astarQuery struct {
	graph     *da.Graph
	heuristic Heuristic

	forwardInfo map[da.Index]*VertexInfo
	pq          *da.MinHeap[da.Index]

	target da.Index

	nodesExpanded   int
	goalTests       int
	frontierInserts int
}

func (rt *AStar) ShortestPath(start, goal string) (SearchResult, error) {
	s, ok := rt.graph.GetVertexId(start)
	if !ok {
		return SearchResult{}, util.WrapErrorf(da.ErrUnknownNode, util.ErrBadParamInput,
			"start %q is not in the graph", start)
	}
	t, ok := rt.graph.GetVertexId(goal)
	if !ok {
		return SearchResult{}, util.WrapErrorf(da.ErrUnknownNode, util.ErrBadParamInput,
			"goal %q is not in the graph", goal)
	}

	if s == t {
		return newSearchResult(true, []string{start}, 0, 0, 1, 0), nil
	}

	q := &astarQuery{
		graph:       rt.graph,
		heuristic:   rt.heuristic,
		forwardInfo: make(map[da.Index]*VertexInfo),
		pq:          da.NewFourAryHeap[da.Index](),
		target:      t,
	}

	return q.run(s), nil
}

func (q *astarQuery) run(s da.Index) SearchResult {
	sNode := da.NewPriorityQueueNode(q.heuristic.Estimate(s, q.target), s)
	q.forwardInfo[s] = NewVertexInfo(0, da.INVALID_VERTEX_ID, sNode)
	q.pq.Insert(sNode)
	q.frontierInserts++

	for !q.pq.IsEmpty() {
		if q.graphSearchUni() {
			return newSearchResult(true, q.reconstructPath(),
				q.forwardInfo[q.target].GetTravelCost(),
				q.nodesExpanded, q.goalTests, q.frontierInserts)
		}
	}

	return newNotFoundResult(q.nodesExpanded, q.goalTests, q.frontierInserts)
}

// graphSearchUni settles the frontier node with minimal f and relaxes its out
// edges. returns true once the goal is settled, which is the point its g-cost is
// known to be optimal for an admissible heuristic.
func (q *astarQuery) graphSearchUni() bool {
	uNode, _ := q.pq.ExtractMin()
	u := uNode.GetItem()

	q.goalTests++
	if u == q.target {
		return true
	}
	q.nodesExpanded++

	uCost := q.forwardInfo[u].GetTravelCost()

	q.graph.ForNeighborsOf(u, func(e *da.OutEdge) {
		v := e.GetHead()

		newCost := uCost + e.GetWeight()

		vInfo, vAlreadyLabelled := q.forwardInfo[v]
		if vAlreadyLabelled && da.Ge(newCost, vInfo.GetTravelCost()) {
			// newCost is not better, do nothing
			return
		}

		priority := newCost + q.heuristic.Estimate(v, q.target)

		if vAlreadyLabelled {
			vInfo.UpdateTravelCost(newCost)
			vInfo.UpdateParent(u)

			vhNode := vInfo.GetHeapNode()
			if vhNode.GetPos() >= 0 {
				q.pq.DecreaseKey(vhNode, priority)
				return
			}
			// v was already settled once. an admissible-but-inconsistent
			// heuristic can still improve its g-cost, so reopen it.
			vhNode = da.NewPriorityQueueNode(priority, v)
			vInfo.UpdateHeapNode(vhNode)
			q.pq.Insert(vhNode)
			q.frontierInserts++
			return
		}

		vhNode := da.NewPriorityQueueNode(priority, v)
		q.forwardInfo[v] = NewVertexInfo(newCost, u, vhNode)
		q.pq.Insert(vhNode)
		q.frontierInserts++
	})

	return false
}

func (q *astarQuery) reconstructPath() []string {
	path := make([]string, 0)
	for u := q.target; u != da.INVALID_VERTEX_ID; u = q.forwardInfo[u].GetParent() {
		path = append(path, q.graph.GetVertexName(u))
	}
	return util.ReverseG(path)
}
