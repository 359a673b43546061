package routing

import (
	"math"
)

// SearchResult is the immutable outcome of a single shortest-path query. the
// nodes-expanded / goal-tests / frontier-inserts counters are measured by the
// search itself, never estimated.
type SearchResult struct {
	found bool
	path  []string
	cost  float64

	nodesExpanded   int
	goalTests       int
	frontierInserts int
}

func newSearchResult(found bool, path []string, cost float64,
	nodesExpanded, goalTests, frontierInserts int) SearchResult {
	return SearchResult{
		found:           found,
		path:            path,
		cost:            cost,
		nodesExpanded:   nodesExpanded,
		goalTests:       goalTests,
		frontierInserts: frontierInserts,
	}
}

func newNotFoundResult(nodesExpanded, goalTests, frontierInserts int) SearchResult {
	return SearchResult{
		found:           false,
		path:            []string{},
		cost:            math.Inf(1),
		nodesExpanded:   nodesExpanded,
		goalTests:       goalTests,
		frontierInserts: frontierInserts,
	}
}

func (r SearchResult) Found() bool {
	return r.found
}

// Path is the ordered vertex sequence from start to goal. empty when not found.
func (r SearchResult) Path() []string {
	return r.path
}

// Cost is the summed weight of the traversed edges, +Inf when not found.
func (r SearchResult) Cost() float64 {
	return r.cost
}

// Steps is the number of vertices on the path.
func (r SearchResult) Steps() int {
	return len(r.path)
}

func (r SearchResult) NodesExpanded() int {
	return r.nodesExpanded
}

func (r SearchResult) GoalTests() int {
	return r.goalTests
}

func (r SearchResult) FrontierInserts() int {
	return r.frontierInserts
}
