package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/internal/pkg/safety"
	"github.com/sakhipath/sakhipath/internal/utils"
	"github.com/sakhipath/sakhipath/services/routes"
)

// RouteHandler handles HTTP requests for route operations
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
	}
}

// PlanRouteRequest is the request body for route planning
type PlanRouteRequest struct {
	Start       models.Location `json:"start"`
	Destination models.Location `json:"destination"`
	RouteType   string          `json:"route_type"`
}

// PlanRoute plans a route between two points for the authenticated user
func (h *RouteHandler) PlanRoute(c echo.Context) error {
	var req PlanRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	objective, err := models.ParseRouteObjective(req.RouteType)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	plan, err := h.routeUC.PlanRoute(c.Request().Context(), &models.RouteRequest{
		UserID:      userID.String(),
		Start:       req.Start,
		Destination: req.Destination,
		Objective:   objective,
	})
	if err != nil {
		return planErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route planned", plan)
}

// ScoreCandidatesRequest is the request body for the internal scoring endpoint
type ScoreCandidatesRequest struct {
	Candidates []models.CandidateRoute `json:"candidates"`
	RouteType  string                  `json:"route_type"`
}

// ScoreCandidates scores candidate routes and ranks them by the requested
// objective without persisting the winner
func (h *RouteHandler) ScoreCandidates(c echo.Context) error {
	var req ScoreCandidatesRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if len(req.Candidates) == 0 {
		return utils.BadRequestResponse(c, "At least one candidate is required")
	}

	objective, err := models.ParseRouteObjective(req.RouteType)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	selection, err := h.routeUC.ScoreCandidates(c.Request().Context(), req.Candidates, objective)
	if err != nil {
		return planErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Candidates scored", selection)
}

func planErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, routes.ErrRouteProvider):
		return utils.ServiceUnavailableResponse(c, "Routing provider is unavailable")
	case errors.Is(err, routes.ErrAllCandidatesFailed):
		return utils.ServiceUnavailableResponse(c, "Unable to score any candidate route")
	case errors.Is(err, safety.ErrNoCandidates):
		return utils.NotFoundResponse(c, "No routes found between the given points")
	case errors.Is(err, safety.ErrUnknownObjective):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}
