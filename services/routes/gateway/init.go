package gateway

import (
	"time"

	httppkg "github.com/sakhipath/sakhipath/internal/pkg/http"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	natspkg "github.com/sakhipath/sakhipath/internal/pkg/nats"
)

// RouteGW handles route gateway operations
type RouteGW struct {
	cfg        *models.Config
	httpClient *httppkg.Client
	natsClient *natspkg.Client
}

// NewRouteGW creates a new unified gateway instance with the routing provider
// HTTP client and a NATS client
func NewRouteGW(cfg *models.Config, natsClient *natspkg.Client) *RouteGW {
	return &RouteGW{
		cfg:        cfg,
		httpClient: httppkg.NewClient(cfg.Google.DirectionsURL, time.Duration(cfg.Google.TimeoutSec)*time.Second),
		natsClient: natsClient,
	}
}
