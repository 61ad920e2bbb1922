// Copyright 2025 Gauss ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package normal provides maximum-likelihood estimation for the
// univariate Normal distribution.
//
// # Overview
//
// This package contains:
//   - EstimateClosedForm: sample mean and Bessel-corrected variance
//   - Evaluate: negative log-likelihood and gradient at (mu, sigma)
//   - Check: sample-set validation
//
// The closed form is the analytic answer; Evaluate is the objective the
// iterative estimators in package optim minimize.
//
// # Basic Usage
//
//	import "github.com/gauss-ml/gauss/normal"
//
//	func main() {
//	    xs := []float64{1, 2, 3, 4, 5}
//
//	    est, err := normal.EstimateClosedForm(xs)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // est.Mu == 3.0, est.SigmaSq == 2.5
//
//	    ev, _ := normal.Evaluate(xs, est.Mu, est.Sigma())
//	    fmt.Println(ev.NLL, ev.GradMu, ev.GradSigma)
//	}
//
// # Errors
//
// Inputs are validated at the call site: ErrTooFewSamples for fewer than
// two samples, ErrNonFiniteSample for NaN or infinite values, and
// ErrNonPositiveSigma when Evaluate receives sigma <= 0. All functions
// are pure; no partial results are ever returned alongside an error.
package normal
