package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/internal/utils"
	"github.com/sakhipath/sakhipath/services/sos"
)

// SOSHandler handles HTTP requests for SOS operations
type SOSHandler struct {
	sosUC sos.SOSUC
}

// NewSOSHandler creates a new SOS HTTP handler
func NewSOSHandler(sosUC sos.SOSUC) *SOSHandler {
	return &SOSHandler{
		sosUC: sosUC,
	}
}

// TriggerSOSRequest is the request body for triggering an SOS
type TriggerSOSRequest struct {
	TriggerSource    string          `json:"trigger_source"`
	Location         models.Location `json:"location"`
	LocationAccuracy float64         `json:"location_accuracy"`
	HeartRate        float64         `json:"heart_rate,omitempty"`
	DetectedEmotion  string          `json:"detected_emotion,omitempty"`
	StressLevel      float64         `json:"stress_level,omitempty"`
}

// TriggerSOS triggers an SOS for the authenticated user
func (h *SOSHandler) TriggerSOS(c echo.Context) error {
	var req TriggerSOSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	return h.trigger(c, userID.String(), &req)
}

// InternalTriggerRequest carries an SOS triggered on a user's behalf by
// another service, such as the wearable ingest pipeline
type InternalTriggerRequest struct {
	UserID string `json:"user_id"`
	TriggerSOSRequest
}

// TriggerSOSInternal triggers an SOS on behalf of a user
func (h *SOSHandler) TriggerSOSInternal(c echo.Context) error {
	var req InternalTriggerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	return h.trigger(c, req.UserID, &req.TriggerSOSRequest)
}

func (h *SOSHandler) trigger(c echo.Context, userID string, req *TriggerSOSRequest) error {
	result, err := h.sosUC.TriggerSOS(c.Request().Context(), &models.SOSRequest{
		UserID:           userID,
		TriggerSource:    req.TriggerSource,
		Location:         req.Location,
		LocationAccuracy: req.LocationAccuracy,
		HeartRate:        req.HeartRate,
		DetectedEmotion:  req.DetectedEmotion,
		StressLevel:      req.StressLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, sos.ErrUnknownTriggerSource):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, sos.ErrUserNotFound):
			return utils.NotFoundResponse(c, "User not found")
		default:
			return utils.InternalServerErrorResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "SOS triggered", result)
}
