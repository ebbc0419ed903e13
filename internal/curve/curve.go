// Package curve provides the bounded numeric transforms used by the feature scorers.
package curve

import "math"

// expArgLimit bounds logistic/softplus arguments so math.Exp never overflows.
const expArgLimit = 40.0

// Clamp restricts x to the inclusive range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Logistic computes the standard sigmoid 1/(1+e^-x).
// The argument is clamped before exponentiation so extreme inputs return
// exactly 0 or 1 instead of overflowing.
func Logistic(x float64) float64 {
	if x > expArgLimit {
		return 1.0
	}
	if x < -expArgLimit {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

// Softplus computes ln(1+e^x), the smooth hinge.
// Large positive arguments short-circuit to x (the asymptote) and large
// negative arguments to 0, keeping the result finite for any finite input.
func Softplus(x float64) float64 {
	if x > expArgLimit {
		return x
	}
	if x < -expArgLimit {
		return 0.0
	}
	return math.Log1p(math.Exp(x))
}

// SatExp computes 1-e^(-alpha*x) for x >= 0, treating negative x as 0.
// It rises monotonically from 0 toward an asymptote of 1, so repeated
// evidence keeps earning credit at a diminishing rate and can never
// overshoot the cap.
func SatExp(x, alpha float64) float64 {
	if x < 0 {
		x = 0
	}
	return 1.0 - math.Exp(-alpha*x)
}

// GaussianBand scores proximity to a target value: exactly 1 at mu,
// decaying symmetrically with width sigma. A non-positive sigma collapses
// the band to an exact match on mu.
func GaussianBand(x, mu, sigma float64) float64 {
	if sigma <= 0 {
		if x == mu {
			return 1.0
		}
		return 0.0
	}
	d := (x - mu) / sigma
	return math.Exp(-0.5*d*d)
}

// Round6 rounds to 6 decimal places, the precision features are frozen at
// so vectors reproduce bit-for-bit across machines.
func Round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}

// Round1 rounds to 1 decimal place, the precision of displayed scores.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
