package routes

import (
	"context"
	"errors"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// ErrSegmentLookup is returned when nearby road segments cannot be fetched
var ErrSegmentLookup = errors.New("road segment lookup failed")

// RouteRepo defines the interface for route data access operations
type RouteRepo interface {
	// GetSegmentsNearPoint returns road segments within radiusMeters of the point
	GetSegmentsNearPoint(ctx context.Context, point models.Location, radiusMeters float64) ([]models.RoadSegmentMetrics, error)

	// CreateRoute persists a selected route
	CreateRoute(ctx context.Context, record *models.RouteRecord) error
}
