package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/routes"
)

// directionsResponse mirrors the Google Directions API response shape
type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
	Routes       []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string          `json:"summary"`
	OverviewPolyline polylineWrapper `json:"overview_polyline"`
	Legs             []directionsLeg `json:"legs"`
}

type polylineWrapper struct {
	Points string `json:"points"`
}

type directionsLeg struct {
	Distance     valueText `json:"distance"`
	Duration     valueText `json:"duration"`
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
}

type valueText struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// GetRoutes fetches candidate routes between two points, including alternatives
func (g *RouteGW) GetRoutes(ctx context.Context, start, destination models.Location) ([]models.CandidateRoute, error) {
	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", start.Latitude, start.Longitude))
	query.Set("destination", fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))
	query.Set("mode", "walking")
	query.Set("alternatives", "true")
	query.Set("key", g.cfg.Google.APIKey)

	var resp directionsResponse
	if err := g.httpClient.GetJSON(ctx, "", query, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", routes.ErrRouteProvider, err)
	}

	if resp.Status != "OK" {
		return nil, fmt.Errorf("%w: status %s: %s", routes.ErrRouteProvider, resp.Status, resp.ErrorMessage)
	}

	candidates := make([]models.CandidateRoute, 0, len(resp.Routes))
	for _, route := range resp.Routes {
		if len(route.Legs) == 0 {
			continue
		}
		distance := 0
		duration := 0
		for _, leg := range route.Legs {
			distance += leg.Distance.Value
			duration += leg.Duration.Value
		}
		candidates = append(candidates, models.CandidateRoute{
			Polyline:        route.OverviewPolyline.Points,
			DistanceMeters:  distance,
			DurationSeconds: duration,
			StartAddress:    route.Legs[0].StartAddress,
			EndAddress:      route.Legs[len(route.Legs)-1].EndAddress,
			Summary:         route.Summary,
		})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: provider returned no routes", routes.ErrRouteProvider)
	}

	return candidates, nil
}
