package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sakhipath/sakhipath/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// User-facing routes (JWT required)
	routeGroup := e.Group("/routes", middleware.JWTAuthMiddleware(h.cfg.JWT))
	routeGroup.POST("/plan", h.routeHTTP.PlanRoute)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey("routes-service"))
	internal.POST("/routes/score", h.routeHTTP.ScoreCandidates)
}
