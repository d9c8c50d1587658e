package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sakhipath/sakhipath/internal/pkg/converter"
	"github.com/sakhipath/sakhipath/internal/pkg/geo"
	"github.com/sakhipath/sakhipath/internal/pkg/logger"
	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/sakhipath/sakhipath/internal/pkg/safety"
	"github.com/sakhipath/sakhipath/services/routes"
)

// PlanRoute fetches candidate routes, scores each one against nearby road
// segment data, ranks them by the requested objective and persists the winner.
func (uc *RouteUC) PlanRoute(ctx context.Context, req *models.RouteRequest) (*models.RoutePlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	candidates, err := uc.routeGW.GetRoutes(ctx, req.Start, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate routes: %w", err)
	}

	selection, err := uc.ScoreCandidates(ctx, candidates, req.Objective)
	if err != nil {
		return nil, err
	}

	plan := &models.RoutePlan{
		Selected:     selection.Selected,
		Alternatives: selection.Alternatives,
	}

	plan.Persisted = uc.persistRoute(ctx, req, selection.Selected)

	uc.publishRouteSelected(ctx, req, selection.Selected)

	return plan, nil
}

// ScoreCandidates scores each candidate and ranks the survivors by the
// given objective.
func (uc *RouteUC) ScoreCandidates(ctx context.Context, candidates []models.CandidateRoute, objective models.RouteObjective) (*models.SelectionResult, error) {
	scored, err := uc.scoreAll(ctx, candidates)
	if err != nil {
		return nil, err
	}

	selection, err := safety.Select(scored, objective)
	if err != nil {
		return nil, err
	}

	return &selection, nil
}

// scoreAll scores each candidate concurrently. Candidates whose scoring
// fails are excluded; at least one must survive.
func (uc *RouteUC) scoreAll(ctx context.Context, candidates []models.CandidateRoute) ([]models.ScoredRoute, error) {
	type result struct {
		route models.ScoredRoute
		err   error
	}

	results := make([]result, len(candidates))

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate models.CandidateRoute) {
			defer wg.Done()
			score, err := uc.scoreCandidate(ctx, candidate)
			if err != nil {
				results[i] = result{err: err}
				return
			}
			results[i] = result{route: models.ScoredRoute{
				CandidateRoute: candidate,
				SafetyScore:    score,
			}}
		}(i, candidate)
	}
	wg.Wait()

	scored := make([]models.ScoredRoute, 0, len(candidates))
	for i, res := range results {
		if res.err != nil {
			logger.Warn("Excluding candidate route after scoring failure",
				logger.Int("candidate", i),
				logger.String("summary", candidates[i].Summary),
				logger.Err(res.err))
			continue
		}
		scored = append(scored, res.route)
	}

	if len(scored) == 0 && len(candidates) > 0 {
		return nil, routes.ErrAllCandidatesFailed
	}

	return scored, nil
}

// scoreCandidate decodes the candidate's polyline, samples it at the
// configured interval and aggregates metrics from segments near each sample.
func (uc *RouteUC) scoreCandidate(ctx context.Context, candidate models.CandidateRoute) (models.SafetyScore, error) {
	path, err := geo.DecodePolyline(candidate.Polyline)
	if err != nil {
		return models.SafetyScore{}, fmt.Errorf("invalid candidate polyline: %w", err)
	}

	samples := geo.SamplePath(path, uc.cfg.Routing.SampleIntervalMeters)

	seen := make(map[string]struct{})
	var segments []models.RoadSegmentMetrics

	for _, sample := range samples {
		point := models.Location{Latitude: sample.Latitude, Longitude: sample.Longitude}
		nearby, err := uc.routeRepo.GetSegmentsNearPoint(ctx, point, uc.cfg.Routing.SegmentRadiusMeters)
		if err != nil {
			return models.SafetyScore{}, fmt.Errorf("segment lookup at (%f, %f): %w",
				sample.Latitude, sample.Longitude, err)
		}
		for _, segment := range nearby {
			if _, ok := seen[segment.SegmentID]; ok {
				continue
			}
			seen[segment.SegmentID] = struct{}{}
			segments = append(segments, segment)
		}
	}

	return safety.Score(segments), nil
}

// persistRoute stores the selected route. Persistence failure does not fail
// the plan; the caller learns about it through the Persisted flag.
func (uc *RouteUC) persistRoute(ctx context.Context, req *models.RouteRequest, selected models.ScoredRoute) bool {
	routePath, err := geo.ToLineString(selected.Polyline)
	if err != nil {
		logger.Error("Failed to build route path for persistence", logger.Err(err))
		return false
	}

	record := &models.RouteRecord{
		ID:              uuid.New(),
		UserID:          converter.StrToUUID(req.UserID),
		StartLocation:   req.Start,
		EndLocation:     req.Destination,
		StartAddress:    selected.StartAddress,
		EndAddress:      selected.EndAddress,
		RoutePath:       routePath,
		RouteType:       req.Objective,
		DistanceMeters:  selected.DistanceMeters,
		DurationSeconds: selected.DurationSeconds,
		SafetyScore:     selected.SafetyScore.Overall,
		CreatedAt:       time.Now(),
	}

	if err := uc.routeRepo.CreateRoute(ctx, record); err != nil {
		logger.Error("Failed to persist selected route",
			logger.String("user_id", req.UserID),
			logger.Err(err))
		return false
	}

	return true
}

// publishRouteSelected emits the selection event. Failures are logged only.
func (uc *RouteUC) publishRouteSelected(ctx context.Context, req *models.RouteRequest, selected models.ScoredRoute) {
	event := models.RouteSelectedEvent{
		UserID:          req.UserID,
		RouteType:       req.Objective,
		DistanceMeters:  selected.DistanceMeters,
		DurationSeconds: selected.DurationSeconds,
		SafetyScore:     selected.SafetyScore.Overall,
		SelectedAt:      time.Now(),
	}

	if err := uc.routeGW.PublishRouteSelected(ctx, event); err != nil {
		logger.Warn("Failed to publish route selected event",
			logger.String("user_id", req.UserID),
			logger.Err(err))
	}
}

func validateRequest(req *models.RouteRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if !req.Start.Valid() {
		return fmt.Errorf("start location is out of range")
	}
	if !req.Destination.Valid() {
		return fmt.Errorf("destination location is out of range")
	}
	if _, err := models.ParseRouteObjective(string(req.Objective)); err != nil {
		return err
	}
	return nil
}
