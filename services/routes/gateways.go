package routes

import (
	"context"
	"errors"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// ErrRouteProvider is returned when the routing provider cannot supply candidates
var ErrRouteProvider = errors.New("routing provider request failed")

// RouteGW defines the route gateways interface
type RouteGW interface {
	// GetRoutes fetches candidate routes between two points from the routing provider
	GetRoutes(ctx context.Context, start, destination models.Location) ([]models.CandidateRoute, error)

	// PublishRouteSelected publishes a route selection event
	PublishRouteSelected(ctx context.Context, event models.RouteSelectedEvent) error
}
