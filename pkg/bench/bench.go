package bench

import (
	"fmt"
	"time"

	"github.com/rotax-engine/rotax/pkg/concurrent"
	"github.com/rotax-engine/rotax/pkg/dataset"
	"github.com/rotax-engine/rotax/pkg/engine"
	"github.com/rotax-engine/rotax/pkg/engine/routing"
	"go.uber.org/zap"
)

// RouteReport is the measured outcome of one start/goal pair: the search result
// plus wall-clock timings over all rounds.
type RouteReport struct {
	Route string
	Start string
	Goal  string

	Found bool
	Cost  float64
	Path  []string
	Steps int

	BestDuration time.Duration
	MeanDuration time.Duration

	NodesExpanded   int
	GoalTests       int
	FrontierInserts int

	Err error
}

// Summary aggregates the per-route reports the way the harness prints them:
// averages over solved routes only.
type Summary struct {
	Algorithm string
	Reports   []RouteReport

	Solved          int
	AvgDuration     time.Duration
	AvgSteps        float64
	AvgNodes        float64
	AvgGoalTests    float64
	AvgFrontierSize float64
}

// Runner replays the dataset's test routes against one search algorithm. each
// route is queried `rounds` times through a worker pool, which is safe because
// the graph is immutable and every query allocates its own frontier.
type Runner struct {
	log    *zap.Logger
	engine *engine.Engine

	algorithm   string
	rounds      int
	concurrency int
}

func NewRunner(log *zap.Logger, eng *engine.Engine, algorithm string, rounds, concurrency int) *Runner {
	if rounds < 1 {
		rounds = 1
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		log:         log,
		engine:      eng,
		algorithm:   algorithm,
		rounds:      rounds,
		concurrency: concurrency,
	}
}

type roundOutcome struct {
	result   routing.SearchResult
	duration time.Duration
	err      error
}

func (r *Runner) Run(routes []dataset.TestRoute) Summary {
	reports := make([]RouteReport, 0, len(routes))
	for _, route := range routes {
		reports = append(reports, r.runRoute(route))
	}

	return r.summarize(reports)
}

func (r *Runner) runRoute(route dataset.TestRoute) RouteReport {
	report := RouteReport{
		Route: fmt.Sprintf("%s -> %s", route.Start, route.Goal),
		Start: route.Start,
		Goal:  route.Goal,
	}

	pool := concurrent.NewWorkerPool[int, roundOutcome](r.concurrency, r.rounds)
	pool.Start(func(round int) roundOutcome {
		result, duration, err := r.engine.ShortestPath(r.algorithm, route.Start, route.Goal)
		return roundOutcome{result: result, duration: duration, err: err}
	})

	for round := 0; round < r.rounds; round++ {
		pool.AddJob(round)
	}
	pool.Close()
	pool.Wait()

	best := time.Duration(0)
	total := time.Duration(0)
	collected := 0
	for outcome := range pool.CollectResults() {
		if outcome.err != nil {
			report.Err = outcome.err
			continue
		}

		if collected == 0 || outcome.duration < best {
			best = outcome.duration
		}
		total += outcome.duration
		collected++

		// the search is deterministic, every round returns the same result
		report.Found = outcome.result.Found()
		report.Cost = outcome.result.Cost()
		report.Path = outcome.result.Path()
		report.Steps = outcome.result.Steps()
		report.NodesExpanded = outcome.result.NodesExpanded()
		report.GoalTests = outcome.result.GoalTests()
		report.FrontierInserts = outcome.result.FrontierInserts()
	}

	if collected > 0 {
		report.BestDuration = best
		report.MeanDuration = total / time.Duration(collected)
		report.Err = nil
	}

	if report.Err != nil {
		r.log.Error("route query failed",
			zap.String("route", report.Route), zap.Error(report.Err))
	}

	return report
}

func (r *Runner) summarize(reports []RouteReport) Summary {
	summary := Summary{
		Algorithm: r.algorithm,
		Reports:   reports,
	}

	totalDuration := time.Duration(0)
	for _, report := range reports {
		if report.Err != nil || !report.Found {
			continue
		}
		summary.Solved++
		totalDuration += report.MeanDuration
		summary.AvgSteps += float64(report.Steps)
		summary.AvgNodes += float64(report.NodesExpanded)
		summary.AvgGoalTests += float64(report.GoalTests)
		summary.AvgFrontierSize += float64(report.FrontierInserts)
	}

	if summary.Solved > 0 {
		n := float64(summary.Solved)
		summary.AvgDuration = totalDuration / time.Duration(summary.Solved)
		summary.AvgSteps /= n
		summary.AvgNodes /= n
		summary.AvgGoalTests /= n
		summary.AvgFrontierSize /= n
	}

	return summary
}
