// Package penalty computes the anti-gaming keyword-density penalty over an
// applicant's combined free text.
package penalty

import (
	"github.com/honorsoc/applicant-ranker/internal/curve"
	"github.com/honorsoc/applicant-ranker/internal/lexicon"
)

// Density penalty parameters. Density is measured in unique lexicon hits
// per 1000 normalized characters. Typical honest writing sits well below
// the free threshold; above it the penalty rises smoothly instead of
// cutting off.
const (
	minTextChars  = 200
	perChars      = 1000.0
	freeThreshold = 40.0
	riseSlope     = 0.25
	satRate       = 0.10
)

// DensityPenalty returns a penalty in [0,10) for keyword stuffing. Texts
// under 200 normalized characters are too short for density to mean
// anything and always score 0. At or below the free threshold the penalty
// is exactly 0; above it, a softplus rise saturates toward 10 so the model
// can learn a bounded negative weight for stuffed text.
func DensityPenalty(text string) float64 {
	normalized := lexicon.Normalize(text)
	if len(normalized) < minTextChars {
		return 0.0
	}

	hits := lexicon.MustTotalUniqueHits(normalized)
	density := perChars * float64(hits) / float64(len(normalized))

	rise := curve.Softplus(riseSlope*(density-freeThreshold)) - curve.Softplus(0)

	return 10.0 * curve.SatExp(rise, satRate)
}
