// Copyright 2025 Gauss ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package normal

import "github.com/gauss-ml/gauss/internal/normal"

// Estimate holds fitted parameters of a univariate Normal distribution.
type Estimate = normal.Estimate

// Evaluation holds the negative log-likelihood and its gradient with
// respect to mu and sigma.
type Evaluation = normal.Evaluation

// Validation and parameter errors.
var (
	ErrTooFewSamples    = normal.ErrTooFewSamples
	ErrNonFiniteSample  = normal.ErrNonFiniteSample
	ErrNonPositiveSigma = normal.ErrNonPositiveSigma
)

// EstimateClosedForm computes the sample mean and the Bessel-corrected
// sample variance, the analytic maximum-likelihood estimates.
//
// Example:
//
//	est, err := normal.EstimateClosedForm([]float64{1, 2, 3, 4, 5})
//	// est.Mu == 3.0, est.SigmaSq == 2.5
func EstimateClosedForm(xs []float64) (Estimate, error) {
	return normal.EstimateClosedForm(xs)
}

// Evaluate computes the negative log-likelihood of the samples under
// Normal(mu, sigma) together with its gradient.
func Evaluate(xs []float64, mu, sigma float64) (Evaluation, error) {
	return normal.Evaluate(xs, mu, sigma)
}

// Check validates a sample set: at least 2 values, all finite.
func Check(xs []float64) error {
	return normal.Check(xs)
}
