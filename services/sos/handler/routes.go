package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sakhipath/sakhipath/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// User-facing routes (JWT required)
	sosGroup := e.Group("/sos", middleware.JWTAuthMiddleware(h.cfg.JWT))
	sosGroup.POST("/trigger", h.sosHTTP.TriggerSOS)

	// Internal routes for service-to-service communication (API key required).
	// Wearables and the voice pipeline report through their own services.
	internal := e.Group("/internal", middleware.ValidateAPIKey("sos-service"))
	internal.POST("/sos/trigger", h.sosHTTP.TriggerSOSInternal)
}
