package models

import (
	"time"

	"github.com/google/uuid"
)

// SOSSeverity classifies how urgent an SOS event is
type SOSSeverity string

const (
	SeverityMedium   SOSSeverity = "medium"
	SeverityHigh     SOSSeverity = "high"
	SeverityCritical SOSSeverity = "critical"
)

// SOS trigger sources
const (
	TriggerSourceManual    = "manual"
	TriggerSourceFall      = "fall"
	TriggerSourceBiometric = "biometric_hr"
	TriggerSourceVoice     = "voice"
)

// SOSRequest is an incoming SOS trigger
type SOSRequest struct {
	UserID           string         `json:"user_id"`
	TriggerSource    string         `json:"trigger_source"`
	Location         Location       `json:"location"`
	LocationAccuracy float64        `json:"location_accuracy"`
	TriggerData      map[string]any `json:"trigger_data,omitempty"`
	HeartRate        float64        `json:"heart_rate,omitempty"`
	DetectedEmotion  string         `json:"detected_emotion,omitempty"`
	StressLevel      float64        `json:"stress_level,omitempty"`
}

// SOSEventStatus tracks the lifecycle of an SOS event
type SOSEventStatus string

const (
	SOSStatusPending SOSEventStatus = "pending"
	SOSStatusActive  SOSEventStatus = "active"
)

// SOSEvent is a persisted SOS occurrence
type SOSEvent struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	TriggerSource    string         `json:"trigger_source"`
	Severity         SOSSeverity    `json:"severity"`
	Location         Location       `json:"location"`
	LocationAccuracy float64        `json:"location_accuracy"`
	HeartRate        float64        `json:"heart_rate,omitempty"`
	DetectedEmotion  string         `json:"detected_emotion,omitempty"`
	StressLevel      float64        `json:"stress_level,omitempty"`
	Status           SOSEventStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}

// SOSEventDTO flattens SOSEvent for database operations
type SOSEventDTO struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	TriggerSource    string    `db:"trigger_source"`
	Severity         string    `db:"severity"`
	Longitude        float64   `db:"longitude"`
	Latitude         float64   `db:"latitude"`
	LocationAccuracy float64   `db:"location_accuracy"`
	HeartRate        float64   `db:"heart_rate"`
	DetectedEmotion  string    `db:"detected_emotion"`
	StressLevel      float64   `db:"stress_level"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
}

// ToDTO converts an SOSEvent to its database representation
func (e *SOSEvent) ToDTO() *SOSEventDTO {
	return &SOSEventDTO{
		ID:               e.ID,
		UserID:           e.UserID,
		TriggerSource:    e.TriggerSource,
		Severity:         string(e.Severity),
		Longitude:        e.Location.Longitude,
		Latitude:         e.Location.Latitude,
		LocationAccuracy: e.LocationAccuracy,
		HeartRate:        e.HeartRate,
		DetectedEmotion:  e.DetectedEmotion,
		StressLevel:      e.StressLevel,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt,
	}
}

// ContactNotification captures the outcome of notifying one trusted contact
type ContactNotification struct {
	ContactID string `json:"contact_id"`
	Status    string `json:"status"` // "sent" or "failed"
	Error     string `json:"error,omitempty"`
}

// TrustedContact is an emergency contact registered by a user
type TrustedContact struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	Name               string    `json:"name" db:"name"`
	PhoneNumber        string    `json:"phone_number" db:"phone_number"`
	IsEmergencyContact bool      `json:"is_emergency_contact" db:"is_emergency_contact"`
	Priority           int       `json:"priority" db:"priority"`
}

// SafeSpot is a nearby safe location (hospital, police station, petrol pump)
type SafeSpot struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`
	Latitude       float64   `json:"latitude" db:"latitude"`
	Longitude      float64   `json:"longitude" db:"longitude"`
	DistanceMeters float64   `json:"distance_meters" db:"distance_meters"`
}

// Safe spot categories searched during an SOS
const (
	SafeSpotHospital      = "hospital"
	SafeSpotPoliceStation = "police_station"
	SafeSpotPetrolPump    = "petrol_pump"
)

// User is the minimal user profile the SOS pipeline needs
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
}

// SOSResult summarizes a processed SOS trigger
type SOSResult struct {
	SOSEventID       uuid.UUID             `json:"sos_event_id"`
	Severity         SOSSeverity           `json:"severity"`
	ContactsNotified []ContactNotification `json:"contacts_notified"`
	NearestSafeSpot  *SafeSpot             `json:"nearest_safe_spot,omitempty"`
	PoliceNotified   bool                  `json:"police_notified"`
}

// PushNotification is a push message delivered to a contact's device
type PushNotification struct {
	ContactID string         `json:"contact_id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
}
