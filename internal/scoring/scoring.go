// Package scoring provides functionality to score feature vectors against a trained ranking model.
package scoring

import (
	"sort"

	"github.com/honorsoc/applicant-ranker/internal/curve"
	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

// ScoreRaw computes the weighted sum of a feature vector plus the model bias.
// The weight count must match the feature count exactly.
func ScoreRaw(m *model.RankingModel, features []float64) (float64, error) {
	weights := m.Weights()
	if len(weights) != len(features) {
		return 0, &DimensionMismatchError{
			WeightCount:  len(weights),
			FeatureCount: len(features),
		}
	}

	total := m.Bias()
	for i, w := range weights {
		total += w * features[i]
	}

	return total, nil
}

// PercentileScore converts a raw score into a displayed score in [0,10] by
// ranking it against a pool of raw scores. The rank is the count of pool
// entries strictly below raw, so identical scores land on the same percentile
// and the result is invariant under any order-preserving relabeling of the
// pool. Returned values are rounded to 1 decimal.
func PercentileScore(raw float64, pool []float64) float64 {
	sorted := make([]float64, len(pool))
	copy(sorted, pool)
	sort.Float64s(sorted)
	return percentileOf(raw, sorted)
}

// percentileOf ranks raw against an already sorted pool.
func percentileOf(raw float64, sorted []float64) float64 {
	n := len(sorted)
	if n <= 1 {
		// A pool of one carries no rank information; the fraction is
		// defined as 0.5.
		return 5.0
	}

	rank := sort.SearchFloat64s(sorted, raw)
	fraction := float64(rank) / float64(n-1)
	return curve.Round1(10 * curve.Clamp(fraction, 0, 1))
}

// ScoreWithPool scores a feature vector and normalizes the raw result against
// the supplied pool in one step.
func ScoreWithPool(m *model.RankingModel, features []float64, pool []float64) (types.ScoreResult, error) {
	raw, err := ScoreRaw(m, features)
	if err != nil {
		return types.ScoreResult{}, err
	}

	return types.ScoreResult{
		RawScore: raw,
		Score:    PercentileScore(raw, pool),
	}, nil
}
