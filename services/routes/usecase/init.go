package usecase

import (
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/routes"
)

// RouteUC implements the route planning use case interface
type RouteUC struct {
	cfg       *models.Config
	routeRepo routes.RouteRepo
	routeGW   routes.RouteGW
}

// NewRouteUC creates a new route planning use case
func NewRouteUC(
	cfg *models.Config,
	routeRepo routes.RouteRepo,
	routeGW routes.RouteGW,
) *RouteUC {
	return &RouteUC{
		cfg:       cfg,
		routeRepo: routeRepo,
		routeGW:   routeGW,
	}
}
