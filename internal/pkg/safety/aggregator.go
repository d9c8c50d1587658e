// Package safety computes multi-dimensional safety scores for routes and
// selects the best candidate under a user-chosen objective.
package safety

import (
	"math"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

// Overall score weights per dimension. They sum to 1.0.
const (
	weightLighting       = 0.30
	weightBusiness       = 0.25
	weightCrowd          = 0.25
	weightReports        = 0.15
	weightInfrastructure = 0.05
)

// neutralScore is the fallback when no segment metadata exists: the route
// is treated as neither safe nor unsafe.
const neutralScore = 5.0

// Score aggregates road segment metrics into a SafetyScore. Each dimension
// is a length-weighted mean of per-segment sub-scores so that short segments
// contribute proportionally less. An empty segment set, or one whose total
// length is zero, yields the neutral 5.0 vector.
func Score(segments []models.RoadSegmentMetrics) models.SafetyScore {
	if len(segments) == 0 {
		return neutralSafetyScore()
	}

	totalLength := 0.0
	for _, s := range segments {
		totalLength += s.LengthMeters
	}
	if totalLength == 0 {
		return neutralSafetyScore()
	}

	var lighting, business, crowd, reports, infra float64
	for _, s := range segments {
		w := s.LengthMeters
		lighting += lightingScore(s) * w
		business += businessScore(s) * w
		crowd += crowdScore(s) * w
		reports += reportsScore(s) * w
		infra += infrastructureScore(s) * w
	}
	lighting /= totalLength
	business /= totalLength
	crowd /= totalLength
	reports /= totalLength
	infra /= totalLength

	overall := lighting*weightLighting +
		business*weightBusiness +
		crowd*weightCrowd +
		reports*weightReports +
		infra*weightInfrastructure

	return models.SafetyScore{
		Overall:        round1(overall),
		Lighting:       round1(lighting),
		Business:       round1(business),
		Crowd:          round1(crowd),
		Reports:        round1(reports),
		Infrastructure: round1(infra),
	}
}

func neutralSafetyScore() models.SafetyScore {
	return models.SafetyScore{
		Overall:        neutralScore,
		Lighting:       neutralScore,
		Business:       neutralScore,
		Crowd:          neutralScore,
		Reports:        neutralScore,
		Infrastructure: neutralScore,
	}
}

func lightingScore(s models.RoadSegmentMetrics) float64 {
	return math.Min(10, s.StreetlightsPerKm*2)
}

func businessScore(s models.RoadSegmentMetrics) float64 {
	return math.Min(10, float64(s.OpenBusinessesCount))
}

func crowdScore(s models.RoadSegmentMetrics) float64 {
	return math.Min(10, s.AvgCrowdDensity*10)
}

func reportsScore(s models.RoadSegmentMetrics) float64 {
	total := s.SafetyReportsPositive + s.SafetyReportsNegative
	if total == 0 {
		return neutralScore
	}
	return 10 * float64(s.SafetyReportsPositive) / float64(total)
}

func infrastructureScore(s models.RoadSegmentMetrics) float64 {
	score := 0.0
	if s.CCTVCamerasCount > 0 {
		score += 3
	}
	if s.HasFootpath {
		score += 3
	}
	if s.RoadWidthMeters > 6 {
		score += 4
	} else {
		score += 2
	}
	return score
}

// round1 rounds to one decimal place, halves away from zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
