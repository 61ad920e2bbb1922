// Copyright 2025 Gauss ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides iterative maximum-likelihood estimation for the
// Normal distribution by gradient descent on the negative log-likelihood.
//
// # Overview
//
// This package contains:
//   - Descend: fixed-step gradient descent over (mu, sigma)
//   - DescendAdam: the same estimator with Adam adaptive steps
//   - Status, Result, Snapshot: run outcomes and diagnostics
//
// Every run is a small state machine: it iterates until the NLL change
// falls below the tolerance (Converged), the iteration cap is hit
// (MaxIterations), or the sigma-positivity guard is exhausted (Diverged).
// MaxIterations and Diverged are reported statuses, not errors; the
// result always carries the last finite parameters.
//
// # Basic Usage
//
//	import (
//	    "github.com/gauss-ml/gauss/normal"
//	    "github.com/gauss-ml/gauss/optim"
//	)
//
//	func fit(xs []float64) error {
//	    closed, err := normal.EstimateClosedForm(xs)
//	    if err != nil {
//	        return err
//	    }
//
//	    res, err := optim.Descend(xs, 0, 1, optim.Config{
//	        LearningRate:  0.001,
//	        Tolerance:     1e-10,
//	        MaxIterations: 10000,
//	    })
//	    if err != nil {
//	        return err
//	    }
//
//	    fmt.Printf("closed form: mu=%.4f sigma^2=%.4f\n", closed.Mu, closed.SigmaSq)
//	    fmt.Printf("descent:     mu=%.4f sigma^2=%.4f (%s, %d iterations)\n",
//	        res.Mu, res.SigmaSq, res.Status, res.Iterations)
//	    return nil
//	}
//
// # Diagnostics
//
// Set Config.TrackHistory to record a Snapshot per iteration:
//
//	res, _ := optim.Descend(xs, 0, 1, optim.Config{TrackHistory: true})
//	for _, snap := range res.History {
//	    fmt.Println(snap.Iteration, snap.Mu, snap.Sigma, snap.NLL)
//	}
package optim
