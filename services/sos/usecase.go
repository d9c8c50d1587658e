package sos

import (
	"context"
	"errors"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// ErrUnknownTriggerSource is returned for trigger sources the pipeline does not recognize
var ErrUnknownTriggerSource = errors.New("unknown SOS trigger source")

// SOSUC defines the interface for SOS business logic
type SOSUC interface {
	TriggerSOS(ctx context.Context, req *models.SOSRequest) (*models.SOSResult, error)
}
