package gateway

import (
	"context"

	"github.com/sakhipath/sakhipath/internal/pkg/constants"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// PublishRouteSelected publishes a route selection event to NATS
func (g *RouteGW) PublishRouteSelected(ctx context.Context, event models.RouteSelectedEvent) error {
	return g.natsClient.Publish(constants.SubjectRouteSelected, event)
}
