package safety

import (
	"testing"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredRoute(summary string, overall float64, durationSec int) models.ScoredRoute {
	return models.ScoredRoute{
		CandidateRoute: models.CandidateRoute{
			Summary:         summary,
			DurationSeconds: durationSec,
		},
		SafetyScore: models.SafetyScore{Overall: overall},
	}
}

func TestSelect_Objectives(t *testing.T) {
	candidates := []models.ScoredRoute{
		scoredRoute("first", 8.0, 1800),
		scoredRoute("second", 6.0, 900),
		scoredRoute("third", 7.0, 1200),
	}

	t.Run("fastest", func(t *testing.T) {
		result, err := Select(candidates, models.ObjectiveFastest)
		require.NoError(t, err)
		assert.Equal(t, "second", result.Selected.Summary)
		require.Len(t, result.Alternatives, 2)
		assert.Equal(t, "third", result.Alternatives[0].Summary)
		assert.Equal(t, "first", result.Alternatives[1].Summary)
	})

	t.Run("safest", func(t *testing.T) {
		result, err := Select(candidates, models.ObjectiveSafest)
		require.NoError(t, err)
		assert.Equal(t, "first", result.Selected.Summary)
		require.Len(t, result.Alternatives, 2)
		assert.Equal(t, "third", result.Alternatives[0].Summary)
		assert.Equal(t, "second", result.Alternatives[1].Summary)
	})

	t.Run("balanced", func(t *testing.T) {
		// composites: 8.0*0.6-0.5*0.4=4.6, 6.0*0.6-0.25*0.4=3.5,
		// 7.0*0.6-(1200/3600)*0.4=4.067
		result, err := Select(candidates, models.ObjectiveBalanced)
		require.NoError(t, err)
		assert.Equal(t, "first", result.Selected.Summary)
		require.Len(t, result.Alternatives, 2)
		assert.Equal(t, "third", result.Alternatives[0].Summary)
		assert.Equal(t, "second", result.Alternatives[1].Summary)
	})
}

func TestSelect_SingleCandidate(t *testing.T) {
	only := scoredRoute("only", 5.0, 600)

	result, err := Select([]models.ScoredRoute{only}, models.ObjectiveSafest)

	require.NoError(t, err)
	assert.Equal(t, only, result.Selected)
	assert.Empty(t, result.Alternatives)
}

func TestSelect_EmptyCandidates(t *testing.T) {
	_, err := Select(nil, models.ObjectiveSafest)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSelect_UnknownObjective(t *testing.T) {
	_, err := Select([]models.ScoredRoute{scoredRoute("a", 5, 60)}, models.RouteObjective("scenic"))
	assert.ErrorIs(t, err, ErrUnknownObjective)
}

func TestSelect_StableTieBreak(t *testing.T) {
	// Equal overall scores keep original candidate order
	candidates := []models.ScoredRoute{
		scoredRoute("a", 7.0, 1000),
		scoredRoute("b", 7.0, 900),
		scoredRoute("c", 7.0, 1100),
	}

	result, err := Select(candidates, models.ObjectiveSafest)

	require.NoError(t, err)
	assert.Equal(t, "a", result.Selected.Summary)
	assert.Equal(t, "b", result.Alternatives[0].Summary)
	assert.Equal(t, "c", result.Alternatives[1].Summary)
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	candidates := []models.ScoredRoute{
		scoredRoute("slow", 3.0, 3000),
		scoredRoute("fast", 2.0, 100),
	}

	_, err := Select(candidates, models.ObjectiveFastest)

	require.NoError(t, err)
	assert.Equal(t, "slow", candidates[0].Summary)
	assert.Equal(t, "fast", candidates[1].Summary)
}

func TestSelect_CapsAlternatives(t *testing.T) {
	candidates := []models.ScoredRoute{
		scoredRoute("a", 9.0, 100),
		scoredRoute("b", 8.0, 200),
		scoredRoute("c", 7.0, 300),
		scoredRoute("d", 6.0, 400),
	}

	result, err := Select(candidates, models.ObjectiveSafest)

	require.NoError(t, err)
	assert.Equal(t, "a", result.Selected.Summary)
	require.Len(t, result.Alternatives, 2)
	assert.Equal(t, "b", result.Alternatives[0].Summary)
	assert.Equal(t, "c", result.Alternatives[1].Summary)
}
