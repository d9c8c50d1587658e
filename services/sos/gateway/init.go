package gateway

import (
	"time"

	httppkg "github.com/sakhipath/sakhipath/internal/pkg/http"
	"github.com/sakhipath/sakhipath/internal/pkg/logger"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	natspkg "github.com/sakhipath/sakhipath/internal/pkg/nats"
	"github.com/sakhipath/sakhipath/internal/pkg/retry"
)

// SOSGW handles SOS gateway operations
type SOSGW struct {
	cfg          *models.Config
	twilioClient *httppkg.Client
	natsClient   *natspkg.Client
	retrier      *retry.Retrier
}

// NewSOSGW creates a new unified gateway instance with the messaging
// provider HTTP client and a NATS client
func NewSOSGW(cfg *models.Config, natsClient *natspkg.Client) *SOSGW {
	return &SOSGW{
		cfg:          cfg,
		twilioClient: httppkg.NewClient(cfg.Twilio.BaseURL, time.Duration(cfg.Twilio.TimeoutSec)*time.Second),
		natsClient:   natsClient,
		retrier:      retry.NewWithDefaults(logger.GetGlobalLogger()),
	}
}
