package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sakhipath/sakhipath/internal/pkg/geo"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/services/sos"
)

// SOSRepo implements the SOS repository interface
type SOSRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSOSRepository creates a new SOS repository
func NewSOSRepository(cfg *models.Config, db *sqlx.DB) *SOSRepo {
	return &SOSRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetUser fetches the minimal user profile needed by the SOS pipeline
func (r *SOSRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `SELECT id, name, phone_number FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sos.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// CreateSOSEvent persists a new SOS event
func (r *SOSRepo) CreateSOSEvent(ctx context.Context, event *models.SOSEvent) error {
	dto := event.ToDTO()

	query := `
		INSERT INTO sos_events (
			id, user_id, trigger_source, severity, location,
			location_accuracy, heart_rate, detected_emotion, stress_level,
			status, created_at
		) VALUES (
			:id, :user_id, :trigger_source, :severity,
			point(:longitude, :latitude),
			:location_accuracy, :heart_rate, :detected_emotion, :stress_level,
			:status, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert SOS event: %w", err)
	}

	return nil
}

// SetSafeSpot links the nearest safe spot to an SOS event
func (r *SOSRepo) SetSafeSpot(ctx context.Context, eventID uuid.UUID, safeSpotID uuid.UUID) error {
	query := `UPDATE sos_events SET safe_spot_id = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, safeSpotID, eventID); err != nil {
		return fmt.Errorf("failed to set safe spot on SOS event: %w", err)
	}

	return nil
}

// RecordContactsNotified stores the per-contact notification outcomes on the event
func (r *SOSRepo) RecordContactsNotified(ctx context.Context, eventID uuid.UUID, notifications []models.ContactNotification) error {
	payload, err := json.Marshal(notifications)
	if err != nil {
		return fmt.Errorf("failed to encode notification outcomes: %w", err)
	}

	query := `UPDATE sos_events SET contacts_notified = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, payload, eventID); err != nil {
		return fmt.Errorf("failed to record notified contacts: %w", err)
	}

	return nil
}

// MarkPoliceNotified flags the event after a police station has been alerted
func (r *SOSRepo) MarkPoliceNotified(ctx context.Context, eventID uuid.UUID) error {
	query := `UPDATE sos_events SET police_notified = true, police_notified_at = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), eventID); err != nil {
		return fmt.Errorf("failed to mark police notified: %w", err)
	}

	return nil
}

// ActivateSOSEvent transitions a pending SOS event to active
func (r *SOSRepo) ActivateSOSEvent(ctx context.Context, eventID uuid.UUID) error {
	query := `UPDATE sos_events SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, models.SOSStatusActive, eventID, models.SOSStatusPending)
	if err != nil {
		return fmt.Errorf("failed to activate SOS event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check SOS event activation: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("SOS event %s is not pending", eventID)
	}

	return nil
}

// GetEmergencyContacts returns the user's emergency contacts ordered by priority
func (r *SOSRepo) GetEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.TrustedContact, error) {
	query := `
		SELECT id, user_id, name, phone_number, is_emergency_contact, priority
		FROM trusted_contacts
		WHERE user_id = $1 AND is_emergency_contact = true
		ORDER BY priority ASC
	`

	contacts := []models.TrustedContact{}
	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch emergency contacts: %w", err)
	}

	return contacts, nil
}

// GetNearbySafeSpots returns safe spots of the given categories within
// radiusMeters of the location, nearest first
func (r *SOSRepo) GetNearbySafeSpots(ctx context.Context, location models.Location, radiusMeters float64, categories []string) ([]models.SafeSpot, error) {
	query := `
		SELECT
			id, name, category, phone_number,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude,
			ST_Distance(geom::geography, ST_GeomFromText($1, 4326)::geography) AS distance_meters
		FROM safe_spots
		WHERE category = ANY($2)
		AND ST_DWithin(geom::geography, ST_GeomFromText($1, 4326)::geography, $3)
		ORDER BY geom <-> ST_GeomFromText($1, 4326)
		LIMIT 5
	`

	pointWKT := geo.PointWKT(geo.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude})

	spots := []models.SafeSpot{}
	if err := r.db.SelectContext(ctx, &spots, query, pointWKT, pq.Array(categories), radiusMeters); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby safe spots: %w", err)
	}

	return spots, nil
}
