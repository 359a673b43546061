package controllers

import (
	"time"

	"github.com/rotax-engine/rotax/pkg/engine/routing"
)

type RoutingService interface {
	Route(algorithm, start, goal string) (routing.SearchResult, time.Duration, string, error)
	NearestRoute(algorithm string, origLat, origLon, dstLat, dstLon float64) (routing.SearchResult,
		time.Duration, string, string, string, error)
}
