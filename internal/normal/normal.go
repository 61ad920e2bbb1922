// Package normal implements maximum-likelihood estimation for the
// univariate Normal distribution.
//
// This package provides:
//   - EstimateClosedForm: analytic sample mean and Bessel-corrected variance
//   - Evaluate: negative log-likelihood and its gradient at (mu, sigma)
//
// Both are pure functions over a slice of samples. The iterative
// gradient-descent estimator built on Evaluate lives in internal/optim.
package normal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Estimate holds fitted parameters of a univariate Normal distribution.
type Estimate struct {
	Mu      float64 // Estimated mean
	SigmaSq float64 // Estimated variance
}

// Sigma returns the standard deviation, sqrt(SigmaSq).
func (e Estimate) Sigma() float64 {
	return math.Sqrt(e.SigmaSq)
}

// Evaluation holds the negative log-likelihood and its gradient with
// respect to mu and sigma at a single point in parameter space.
type Evaluation struct {
	NLL       float64 // Negative log-likelihood
	GradMu    float64 // dNLL/dmu
	GradSigma float64 // dNLL/dsigma
}

// Check validates a sample set for estimation.
//
// A valid sample set has at least 2 values (Bessel's correction divides
// by N-1) and contains no NaN or infinities.
//
// Returns ErrTooFewSamples or ErrNonFiniteSample on violation.
func Check(xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, len(xs))
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: value %v at index %d", ErrNonFiniteSample, x, i)
		}
	}
	return nil
}

// residuals returns xs - mu as a fresh slice.
//
// Moment sums are always taken over residuals. Expanding sum((x-mu)^2)
// into sum(x^2) - N*mu^2 cancels catastrophically when |mu| is large
// relative to the spread of the data.
func residuals(xs []float64, mu float64) []float64 {
	r := make([]float64, len(xs))
	copy(r, xs)
	floats.AddConst(-mu, r)
	return r
}
