package routes

import (
	"context"
	"errors"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// ErrAllCandidatesFailed is returned when scoring fails for every candidate route
var ErrAllCandidatesFailed = errors.New("safety scoring failed for all candidate routes")

// RouteUC defines the interface for route planning business logic
type RouteUC interface {
	PlanRoute(ctx context.Context, req *models.RouteRequest) (*models.RoutePlan, error)
	ScoreCandidates(ctx context.Context, candidates []models.CandidateRoute, objective models.RouteObjective) (*models.SelectionResult, error)
}
