package main

import (
	"context"
	"flag"
	"os"

	da "github.com/rotax-engine/rotax/pkg/datastructure"
	"github.com/rotax-engine/rotax/pkg/dataset"
	"github.com/rotax-engine/rotax/pkg/engine"
	"github.com/rotax-engine/rotax/pkg/http"
	"github.com/rotax-engine/rotax/pkg/http/usecases"
	"github.com/rotax-engine/rotax/pkg/logger"
	"github.com/rotax-engine/rotax/pkg/spatialindex"
	"github.com/rotax-engine/rotax/pkg/util"
	"go.uber.org/zap"
)

var (
	datasetFile           = flag.String("dataset", "./data/brazil_cities.json", "city dataset json filepath")
	graphCacheFile        = flag.String("graph_cache", "./data/rotax.graph", "compressed graph cache filepath")
	rebuildGraph          = flag.Bool("rebuild_graph", false, "ignore the graph cache and rebuild from the dataset")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 50.0, "leaf node (r-tree) bounding box radius in km")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("config file not loaded, using defaults", zap.Error(err))
	}

	graph, err := loadGraph(logger)
	if err != nil {
		panic(err)
	}

	routingEngine := engine.NewEngine(graph, logger)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, logger)

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, rtree)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, false, routingService)

	signal := http.GracefulShutdown()

	logger.Info("Rotax Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func loadGraph(log *zap.Logger) (*da.Graph, error) {
	if !*rebuildGraph {
		if _, err := os.Stat(*graphCacheFile); err == nil {
			log.Info("loading graph from cache", zap.String("file", *graphCacheFile))
			return da.ReadGraph(*graphCacheFile)
		}
	}

	d, err := dataset.Load(*datasetFile)
	if err != nil {
		return nil, err
	}

	graph, err := d.BuildGraph(log)
	if err != nil {
		return nil, err
	}

	if err := graph.WriteGraph(*graphCacheFile); err != nil {
		log.Warn("could not write graph cache", zap.Error(err))
	}

	return graph, nil
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
