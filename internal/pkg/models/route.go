package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RouteObjective selects the comparator used when ranking candidate routes
type RouteObjective string

const (
	ObjectiveSafest   RouteObjective = "safest"
	ObjectiveFastest  RouteObjective = "fastest"
	ObjectiveBalanced RouteObjective = "balanced"
)

// ParseRouteObjective validates a raw objective value
func ParseRouteObjective(s string) (RouteObjective, error) {
	switch RouteObjective(s) {
	case ObjectiveSafest, ObjectiveFastest, ObjectiveBalanced:
		return RouteObjective(s), nil
	}
	return "", fmt.Errorf("unknown route objective %q", s)
}

// RouteRequest is a request to plan a route between two points
type RouteRequest struct {
	UserID      string         `json:"user_id"`
	Start       Location       `json:"start"`
	Destination Location       `json:"destination"`
	Objective   RouteObjective `json:"route_type"`
}

// CandidateRoute is a raw route returned by the routing provider
type CandidateRoute struct {
	Polyline        string `json:"polyline"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	StartAddress    string `json:"start_address"`
	EndAddress      string `json:"end_address"`
	Summary         string `json:"summary"`
}

// ScoredRoute is a candidate route augmented with its safety score
type ScoredRoute struct {
	CandidateRoute
	SafetyScore SafetyScore `json:"safety_score"`
}

// SelectionResult holds the winning route and the next-best alternatives
type SelectionResult struct {
	Selected     ScoredRoute   `json:"route"`
	Alternatives []ScoredRoute `json:"alternatives"`
}

// RoutePlan is the full outcome of a plan-route request
type RoutePlan struct {
	Selected     ScoredRoute   `json:"route"`
	Alternatives []ScoredRoute `json:"alternatives"`
	Persisted    bool          `json:"persisted"`
}

// RouteRecord is the persisted summary of a selected route
type RouteRecord struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	StartLocation   Location       `json:"start_location"`
	EndLocation     Location       `json:"end_location"`
	StartAddress    string         `json:"start_address"`
	EndAddress      string         `json:"end_address"`
	RoutePath       string         `json:"route_path"` // WKT linestring
	RouteType       RouteObjective `json:"route_type"`
	DistanceMeters  int            `json:"distance_meters"`
	DurationSeconds int            `json:"duration_seconds"`
	SafetyScore     float64        `json:"safety_score"`
	CreatedAt       time.Time      `json:"created_at"`
}

// RouteRecordDTO flattens RouteRecord for database operations
type RouteRecordDTO struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	StartLongitude  float64   `db:"start_longitude"`
	StartLatitude   float64   `db:"start_latitude"`
	EndLongitude    float64   `db:"end_longitude"`
	EndLatitude     float64   `db:"end_latitude"`
	StartAddress    string    `db:"start_address"`
	EndAddress      string    `db:"end_address"`
	RoutePath       string    `db:"route_path"`
	RouteType       string    `db:"route_type"`
	DistanceMeters  int       `db:"distance_meters"`
	DurationSeconds int       `db:"duration_seconds"`
	SafetyScore     float64   `db:"safety_score"`
	CreatedAt       time.Time `db:"created_at"`
}

// ToDTO converts a RouteRecord to its database representation
func (r *RouteRecord) ToDTO() *RouteRecordDTO {
	return &RouteRecordDTO{
		ID:              r.ID,
		UserID:          r.UserID,
		StartLongitude:  r.StartLocation.Longitude,
		StartLatitude:   r.StartLocation.Latitude,
		EndLongitude:    r.EndLocation.Longitude,
		EndLatitude:     r.EndLocation.Latitude,
		StartAddress:    r.StartAddress,
		EndAddress:      r.EndAddress,
		RoutePath:       r.RoutePath,
		RouteType:       string(r.RouteType),
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: r.DurationSeconds,
		SafetyScore:     r.SafetyScore,
		CreatedAt:       r.CreatedAt,
	}
}

// RouteSelectedEvent is published after a route has been planned
type RouteSelectedEvent struct {
	UserID          string         `json:"user_id"`
	RouteType       RouteObjective `json:"route_type"`
	DistanceMeters  int            `json:"distance_meters"`
	DurationSeconds int            `json:"duration_seconds"`
	SafetyScore     float64        `json:"safety_score"`
	SelectedAt      time.Time      `json:"selected_at"`
}
