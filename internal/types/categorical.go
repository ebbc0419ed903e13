// Package types provides type definitions for structured data used throughout the applicant-ranker system.
package types

import "strings"

// CalcAnswer is the calculus-completion form answer.
type CalcAnswer string

// Recognized calculus-completion answers. Anything else parses to
// CalcUnknown, which scores as the lowest-credit answer.
const (
	CalcYes     CalcAnswer = "yes"
	CalcNo      CalcAnswer = "no"
	CalcUnknown CalcAnswer = "unknown"
)

// ParseCalcAnswer maps a raw form value onto a CalcAnswer. Unrecognized
// values fall back to CalcUnknown rather than failing; the fallback is the
// documented lowest-credit branch, not an error.
func ParseCalcAnswer(raw string) CalcAnswer {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return CalcYes
	case "no":
		return CalcNo
	default:
		return CalcUnknown
	}
}

// RigorTier is the self-reported rigor of an applicant's upper-level
// coursework, used only by the legacy count-based fallback when no course
// list is provided.
type RigorTier string

// Rigor tiers in increasing order of credit.
const (
	RigorStandard RigorTier = "standard"
	RigorUpper    RigorTier = "upper"
	RigorProof    RigorTier = "proof"
	RigorGrad     RigorTier = "grad"
)

// ParseRigorTier maps a raw form value onto a RigorTier. Unrecognized
// values fall back to RigorStandard, the zero-bonus tier.
func ParseRigorTier(raw string) RigorTier {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "proof":
		return RigorProof
	case "upper":
		return RigorUpper
	case "grad":
		return RigorGrad
	case "standard":
		return RigorStandard
	default:
		return RigorStandard
	}
}
