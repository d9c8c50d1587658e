package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"github.com/sakhipath/sakhipath/internal/pkg/constants"
	"github.com/sakhipath/sakhipath/internal/pkg/database"
	"github.com/sakhipath/sakhipath/internal/pkg/geo"
	"github.com/sakhipath/sakhipath/internal/pkg/logger"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/internal/utils"
	"github.com/sakhipath/sakhipath/services/routes"
)

// RouteRepo implements the route repository interface
type RouteRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RouteRepo {
	return &RouteRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetSegmentsNearPoint returns road segments within radiusMeters of the point.
// Results are cached per geohash cell so that nearby sample points along the
// same street reuse one database query.
func (r *RouteRepo) GetSegmentsNearPoint(ctx context.Context, point models.Location, radiusMeters float64) ([]models.RoadSegmentMetrics, error) {
	cacheKey := fmt.Sprintf(constants.KeySegmentCell,
		utils.EncodeLocation(point, r.cfg.Routing.SegmentCachePrecision))

	if cached, err := r.redisClient.Get(ctx, cacheKey); err == nil {
		var segments []models.RoadSegmentMetrics
		if err := json.Unmarshal([]byte(cached), &segments); err == nil {
			return segments, nil
		}
		// Corrupt cache entry, fall through to the database
		logger.Warn("Dropping unreadable segment cache entry", logger.String("key", cacheKey))
		_ = r.redisClient.Delete(ctx, cacheKey)
	} else if err != redis.Nil {
		logger.Warn("Segment cache read failed", logger.String("key", cacheKey), logger.Err(err))
	}

	segments, err := r.querySegmentsNearPoint(ctx, point, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", routes.ErrSegmentLookup, err)
	}

	r.cacheSegments(ctx, cacheKey, segments)

	return segments, nil
}

func (r *RouteRepo) querySegmentsNearPoint(ctx context.Context, point models.Location, radiusMeters float64) ([]models.RoadSegmentMetrics, error) {
	query := `
		SELECT
			id, length_meters, streetlights_per_km, open_businesses_count,
			avg_crowd_density, safety_reports_positive, safety_reports_negative,
			cctv_cameras_count, has_footpath, road_width_meters
		FROM road_segments
		WHERE ST_DWithin(
			geom::geography,
			ST_GeomFromText($1, 4326)::geography,
			$2
		)
	`

	pointWKT := geo.PointWKT(geo.Coordinate{Latitude: point.Latitude, Longitude: point.Longitude})

	segments := []models.RoadSegmentMetrics{}
	if err := r.db.SelectContext(ctx, &segments, query, pointWKT, radiusMeters); err != nil {
		return nil, err
	}

	return segments, nil
}

func (r *RouteRepo) cacheSegments(ctx context.Context, cacheKey string, segments []models.RoadSegmentMetrics) {
	payload, err := json.Marshal(segments)
	if err != nil {
		return
	}

	ttl := time.Duration(r.cfg.Routing.SegmentCacheTTLSec) * time.Second
	if err := r.redisClient.Set(ctx, cacheKey, payload, ttl); err != nil {
		logger.Warn("Segment cache write failed", logger.String("key", cacheKey), logger.Err(err))
	}
}
