package safety

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sakhipath/sakhipath/internal/pkg/models"
)

var (
	// ErrNoCandidates is returned when selection is attempted with no
	// scored candidate routes
	ErrNoCandidates = errors.New("no candidate routes to select from")

	// ErrUnknownObjective is returned for an objective outside the
	// enumerated set
	ErrUnknownObjective = errors.New("unknown route objective")
)

// maxAlternatives caps how many runner-up routes ride along with the winner
const maxAlternatives = 2

// Select orders candidates under the given objective and returns the winner
// plus up to two runners-up under the same ordering. The sort is stable, so
// equal-key candidates keep their original order; that is the deterministic
// tie-break. Candidates must be non-empty.
func Select(candidates []models.ScoredRoute, objective models.RouteObjective) (models.SelectionResult, error) {
	if len(candidates) == 0 {
		return models.SelectionResult{}, ErrNoCandidates
	}

	less, err := comparator(objective)
	if err != nil {
		return models.SelectionResult{}, err
	}

	ranked := make([]models.ScoredRoute, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	alternatives := ranked[1:]
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	return models.SelectionResult{
		Selected:     ranked[0],
		Alternatives: alternatives,
	}, nil
}

func comparator(objective models.RouteObjective) (func(a, b models.ScoredRoute) bool, error) {
	switch objective {
	case models.ObjectiveSafest:
		return func(a, b models.ScoredRoute) bool {
			return a.SafetyScore.Overall > b.SafetyScore.Overall
		}, nil
	case models.ObjectiveFastest:
		return func(a, b models.ScoredRoute) bool {
			return a.DurationSeconds < b.DurationSeconds
		}, nil
	case models.ObjectiveBalanced:
		return func(a, b models.ScoredRoute) bool {
			return CompositeScore(a) > CompositeScore(b)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownObjective, objective)
}

// CompositeScore is the balanced objective's trade-off between safety and
// travel time: the 0-10 safety score weighted against duration in hours.
func CompositeScore(r models.ScoredRoute) float64 {
	return r.SafetyScore.Overall*0.6 - (float64(r.DurationSeconds)/3600)*0.4
}
