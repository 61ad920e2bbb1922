// Copyright 2025 Gauss ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/gauss-ml/gauss/internal/optim"

// Status is the terminal state of a descent run.
type Status = optim.Status

// Terminal statuses.
const (
	Converged     = optim.Converged
	MaxIterations = optim.MaxIterations
	Diverged      = optim.Diverged
)

// Config configures a descent run. Zero values are replaced with
// defaults: LearningRate=0.01, Tolerance=1e-9, MaxIterations=1000.
type Config = optim.Config

// Result is the outcome of a descent run.
type Result = optim.Result

// Snapshot records one point of the descent trajectory.
type Snapshot = optim.Snapshot

// ErrInvalidConfig is returned for explicitly invalid Config values.
var ErrInvalidConfig = optim.ErrInvalidConfig

// Descend estimates (mu, sigma^2) by fixed-step gradient descent on the
// negative log-likelihood, starting from (mu0, sigma0).
//
// Example:
//
//	res, err := optim.Descend(xs, 0, 1, optim.Config{
//	    LearningRate:  0.001,
//	    Tolerance:     1e-10,
//	    MaxIterations: 10000,
//	})
func Descend(xs []float64, mu0, sigma0 float64, cfg Config) (Result, error) {
	return optim.Descend(xs, mu0, sigma0, cfg)
}

// DescendAdam estimates (mu, sigma^2) by Adam gradient descent on the
// negative log-likelihood. Same termination semantics as Descend.
func DescendAdam(xs []float64, mu0, sigma0 float64, cfg Config) (Result, error) {
	return optim.DescendAdam(xs, mu0, sigma0, cfg)
}
