package repository

import (
	"context"
	"fmt"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// CreateRoute persists a selected route
func (r *RouteRepo) CreateRoute(ctx context.Context, record *models.RouteRecord) error {
	dto := record.ToDTO()

	query := `
		INSERT INTO routes (
			id, user_id, start_location, end_location,
			start_address, end_address, route_path, route_type,
			distance_meters, duration_seconds, safety_score, created_at
		) VALUES (
			:id, :user_id,
			point(:start_longitude, :start_latitude),
			point(:end_longitude, :end_latitude),
			:start_address, :end_address,
			ST_GeomFromText(:route_path, 4326), :route_type,
			:distance_meters, :duration_seconds, :safety_score, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	return nil
}
