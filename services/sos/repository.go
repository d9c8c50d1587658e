package sos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// ErrUserNotFound is returned when the triggering user does not exist
var ErrUserNotFound = errors.New("user not found")

// SOSRepo defines the interface for SOS data access operations
type SOSRepo interface {
	// User lookup
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// SOS event lifecycle
	CreateSOSEvent(ctx context.Context, event *models.SOSEvent) error
	SetSafeSpot(ctx context.Context, eventID uuid.UUID, safeSpotID uuid.UUID) error
	RecordContactsNotified(ctx context.Context, eventID uuid.UUID, notifications []models.ContactNotification) error
	MarkPoliceNotified(ctx context.Context, eventID uuid.UUID) error
	ActivateSOSEvent(ctx context.Context, eventID uuid.UUID) error

	// GetEmergencyContacts returns the user's emergency contacts ordered by priority
	GetEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.TrustedContact, error)

	// GetNearbySafeSpots returns safe spots of the given categories within
	// radiusMeters of the location, nearest first
	GetNearbySafeSpots(ctx context.Context, location models.Location, radiusMeters float64, categories []string) ([]models.SafeSpot, error)
}
