// Package essay scores free-text essay responses: sentence-count band,
// narrative arc, plan specificity, and term usage.
package essay

import (
	"strings"

	"github.com/honorsoc/applicant-ranker/internal/curve"
	"github.com/honorsoc/applicant-ranker/internal/lexicon"
)

// Sentence band parameters. The band peaks at the target sentence count and
// a small floor rewards writing anything at all.
const (
	sentenceTarget = 3.0
	sentenceWidth  = 1.2
	presenceFloor  = 0.15
	bandWeight     = 0.85
)

// Narrative arc parameters. The logistic midpoint sits just below 2-of-3
// categories, so hitting two of context/action/reflection clears most of
// the range.
const (
	arcCategoryCount = 3.0
	arcMidpoint      = 0.62
	arcSteepness     = 12.0
)

// Plan specificity parameters. Specific commitments outweigh generic
// intent verbs.
const (
	genericWeight  = 0.45
	genericRate    = 0.5
	specificWeight = 0.55
	specificRate   = 0.6
)

// Term usage saturation rates.
const (
	mathTermRate        = 0.45
	reasoningMarkerRate = 0.55
)

// SentenceBandScore scores an essay's length in sentences against the
// target band. Too few and too many sentences both lose credit; empty text
// scores 0.
func SentenceBandScore(text string) float64 {
	normalized := lexicon.Normalize(text)
	if normalized == "" {
		return 0.0
	}

	n := float64(countSentences(normalized))
	band := curve.GaussianBand(n, sentenceTarget, sentenceWidth)

	return 10.0 * curve.Clamp(presenceFloor+bandWeight*band, 0, 1)
}

// ArcScore measures narrative arc: how many of the context, action, and
// reflection categories appear at least once. The logistic makes 2-of-3 the
// threshold between low and high scores.
func ArcScore(text string) float64 {
	normalized := lexicon.Normalize(text)

	matched := 0.0
	for _, name := range []string{lexicon.ArcContext, lexicon.ArcAction, lexicon.ArcReflection} {
		if lexicon.MustGet(name).UniqueHits(normalized) > 0 {
			matched++
		}
	}

	raw := matched / arcCategoryCount
	shifted := arcSteepness * (raw - arcMidpoint)
	return 10.0 * curve.Logistic(shifted)
}

// PlanSpecificityScore scores an involvement plan by blending generic
// intent phrases with mentions of specific programs and events. Naming
// concrete activities earns more than promising to participate.
func PlanSpecificityScore(text string) float64 {
	normalized := lexicon.Normalize(text)

	genericHits := float64(lexicon.MustGet(lexicon.PlanGeneric).UniqueHits(normalized))
	specificHits := float64(lexicon.MustGet(lexicon.PlanSpecific).UniqueHits(normalized))

	blend := genericWeight*curve.SatExp(genericHits, genericRate) +
		specificWeight*curve.SatExp(specificHits, specificRate)

	return 10.0 * blend
}

// MathTermScore scores the variety of mathematical vocabulary in the text.
// Distinct terms saturate toward 10; repetition adds nothing.
func MathTermScore(text string) float64 {
	normalized := lexicon.Normalize(text)
	hits := float64(lexicon.MustGet(lexicon.MathCore).UniqueHits(normalized))
	return 10.0 * curve.SatExp(hits, mathTermRate)
}

// ReasoningMarkerScore scores the variety of logical-connective phrases in
// the text.
func ReasoningMarkerScore(text string) float64 {
	normalized := lexicon.Normalize(text)
	hits := float64(lexicon.MustGet(lexicon.ReasoningMarkers).UniqueHits(normalized))
	return 10.0 * curve.SatExp(hits, reasoningMarkerRate)
}

// countSentences counts segments ending in terminal punctuation. Text with
// no terminal punctuation counts as one sentence.
func countSentences(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	count := 0
	for _, seg := range segments {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	return count
}
