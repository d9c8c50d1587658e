package usecase

import (
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/sos"
)

// SOSUC implements the SOS use case interface
type SOSUC struct {
	cfg     *models.Config
	sosRepo sos.SOSRepo
	sosGW   sos.SOSGW
}

// NewSOSUC creates a new SOS use case
func NewSOSUC(
	cfg *models.Config,
	sosRepo sos.SOSRepo,
	sosGW sos.SOSGW,
) *SOSUC {
	return &SOSUC{
		cfg:     cfg,
		sosRepo: sosRepo,
		sosGW:   sosGW,
	}
}
