package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotax-engine/rotax/pkg/bench"
	"github.com/rotax-engine/rotax/pkg/dataset"
	"github.com/rotax-engine/rotax/pkg/engine"
	"github.com/rotax-engine/rotax/pkg/logger"
)

var (
	datasetFile = flag.String("dataset", "./data/brazil_cities.json", "city dataset json filepath")
	algorithm   = flag.String("algorithm", engine.AlgorithmAStar, "search algorithm: astar or dijkstra")
	rounds      = flag.Int("rounds", 10, "timed rounds per route")
	concurrency = flag.Int("concurrency", 4, "concurrent rounds per route")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	d, err := dataset.Load(*datasetFile)
	if err != nil {
		panic(err)
	}

	graph, err := d.BuildGraph(logger)
	if err != nil {
		panic(err)
	}

	routingEngine := engine.NewEngine(graph, logger)

	runner := bench.NewRunner(logger, routingEngine, *algorithm, *rounds, *concurrency)
	summary := runner.Run(d.TestRoutes)

	printSummary(summary)
}

func printSummary(summary bench.Summary) {
	fmt.Printf("%s performance summary (%d routes)\n", strings.ToUpper(summary.Algorithm), len(summary.Reports))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Route\tCost(km)\tBest(ms)\tMean(ms)\tSteps\tNodes\tTests\tInserts")

	for _, report := range summary.Reports {
		cost := "no solution"
		if report.Err != nil {
			cost = "error: " + report.Err.Error()
		} else if report.Found {
			cost = fmt.Sprintf("%.0f", report.Cost)
		}

		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%d\t%d\t%d\t%d\n",
			report.Route,
			cost,
			float64(report.BestDuration.Microseconds())/1000.0,
			float64(report.MeanDuration.Microseconds())/1000.0,
			report.Steps,
			report.NodesExpanded,
			report.GoalTests,
			report.FrontierInserts)
	}
	w.Flush()

	if summary.Solved == 0 {
		fmt.Println("\nno route solved")
		return
	}

	fmt.Printf("\nAverage over %d solved routes:\n", summary.Solved)
	fmt.Printf("  Execution time: %.3f ms\n", float64(summary.AvgDuration.Microseconds())/1000.0)
	fmt.Printf("  Path length: %.1f steps\n", summary.AvgSteps)
	fmt.Printf("  Nodes expanded: %.1f\n", summary.AvgNodes)
	fmt.Printf("  Goal tests: %.1f\n", summary.AvgGoalTests)
	fmt.Printf("  Frontier inserts: %.1f\n", summary.AvgFrontierSize)
}
