package handler

import (
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/sos"
	httpHandler "github.com/sakhipath/sakhipath/services/sos/handler/http"
)

// Handler combines all handlers for the SOS service
type Handler struct {
	sosHTTP *httpHandler.SOSHandler
	cfg     *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(sosUC sos.SOSUC, cfg *models.Config) *Handler {
	return &Handler{
		sosHTTP: httpHandler.NewSOSHandler(sosUC),
		cfg:     cfg,
	}
}
