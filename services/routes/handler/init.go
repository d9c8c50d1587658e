package handler

import (
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/routes"
	httpHandler "github.com/sakhipath/sakhipath/services/routes/handler/http"
)

// Handler combines all handlers for the routes service
type Handler struct {
	routeHTTP *httpHandler.RouteHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(routeUC routes.RouteUC, cfg *models.Config) *Handler {
	return &Handler{
		routeHTTP: httpHandler.NewRouteHandler(routeUC),
		cfg:       cfg,
	}
}
