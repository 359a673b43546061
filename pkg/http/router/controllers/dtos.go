package controllers

import (
	"time"

	"github.com/rotax-engine/rotax/pkg/engine/routing"
)

type routeRequest struct {
	Start     string `json:"start" validate:"required"`
	Goal      string `json:"goal" validate:"required"`
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=astar dijkstra"`
}

type nearestRouteRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
	Algorithm      string  `json:"algorithm" validate:"omitempty,oneof=astar dijkstra"`
}

type routeResponse struct {
	Found           bool     `json:"found"`
	Cost            float64  `json:"cost_km"`
	Path            []string `json:"path"`
	Steps           int      `json:"steps"`
	Polyline        string   `json:"polyline,omitempty"`
	DurationMs      float64  `json:"execution_time_ms"`
	NodesExpanded   int      `json:"nodes_expanded"`
	GoalTests       int      `json:"goal_tests"`
	FrontierInserts int      `json:"frontier_inserts"`
	SnappedStart    string   `json:"snapped_start,omitempty"`
	SnappedGoal     string   `json:"snapped_goal,omitempty"`
}

func NewRouteResponse(result routing.SearchResult, duration time.Duration,
	polyline, snappedStart, snappedGoal string) routeResponse {
	resp := routeResponse{
		Found:           result.Found(),
		Path:            result.Path(),
		Steps:           result.Steps(),
		Polyline:        polyline,
		DurationMs:      float64(duration.Microseconds()) / 1000.0,
		NodesExpanded:   result.NodesExpanded(),
		GoalTests:       result.GoalTests(),
		FrontierInserts: result.FrontierInserts(),
		SnappedStart:    snappedStart,
		SnappedGoal:     snappedGoal,
	}
	if result.Found() {
		resp.Cost = result.Cost()
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
