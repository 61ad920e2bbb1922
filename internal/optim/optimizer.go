// Package optim implements iterative maximum-likelihood estimation for the
// Normal distribution by gradient descent on the negative log-likelihood.
//
// This package provides:
//   - Descend: fixed-step gradient descent over (mu, sigma)
//   - DescendAdam: the same loop with Adam adaptive steps
//
// Both minimize the NLL computed by internal/normal and share one state
// machine: Initialized -> Iterating -> Converged | MaxIterations | Diverged.
//
// Example:
//
//	res, err := optim.Descend(samples, 0, 1, optim.Config{
//	    LearningRate:  0.001,
//	    Tolerance:     1e-10,
//	    MaxIterations: 10000,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Status, res.Mu, res.SigmaSq)
package optim

import (
	"fmt"
	"math"

	"github.com/gauss-ml/gauss/internal/normal"
)

// maxHalvings bounds the sigma-positivity step guard. A step whose
// proposal cannot be made valid by 20 halvings declares divergence.
const maxHalvings = 20

// Status is the terminal state of a descent run.
type Status int

const (
	// Converged means the NLL change between iterations fell below the
	// configured tolerance.
	Converged Status = iota

	// MaxIterations means the iteration cap was reached first. This is a
	// reported outcome, not an error: the result carries the best
	// parameters found so far.
	MaxIterations

	// Diverged means the step guard could not produce a valid (finite,
	// sigma > 0) proposal. The result carries the last finite parameters
	// rather than NaN or Inf.
	Diverged
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterations:
		return "max-iterations"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Config configures a descent run.
// Zero values are replaced with defaults: LearningRate=0.01,
// Tolerance=1e-9, MaxIterations=1000.
type Config struct {
	LearningRate  float64 // Step size eta (default: 0.01)
	Tolerance     float64 // Convergence threshold on |NLL change| (default: 1e-9)
	MaxIterations int     // Iteration cap (default: 1000)
	TrackHistory  bool    // Record a Snapshot per iteration (default: off)
}

// withDefaults fills zero values and rejects explicit invalid settings.
func (c Config) withDefaults() (Config, error) {
	if c.LearningRate == 0 {
		c.LearningRate = 0.01
	}
	if c.Tolerance == 0 {
		c.Tolerance = 1e-9
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
	if c.LearningRate < 0 {
		return Config{}, fmt.Errorf("%w: learning rate %v", ErrInvalidConfig, c.LearningRate)
	}
	if c.Tolerance < 0 {
		return Config{}, fmt.Errorf("%w: tolerance %v", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations < 0 {
		return Config{}, fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	}
	return c, nil
}

// Snapshot records one point of the descent trajectory.
type Snapshot struct {
	Iteration int
	Mu        float64
	Sigma     float64
	NLL       float64
}

// Result is the outcome of a descent run.
type Result struct {
	Mu         float64
	SigmaSq    float64
	Status     Status
	Iterations int
	History    []Snapshot // non-nil only when Config.TrackHistory is set
}

// updater proposes the raw descent step for the current point. The loop
// applies the step as (mu - dMu, sigma - dSigma), damping it when the
// sigma guard rejects a proposal.
type updater interface {
	step(ev normal.Evaluation) (dMu, dSigma float64)
}

// descend runs the shared descent state machine. cfg must already have
// defaults applied.
func descend(xs []float64, mu0, sigma0 float64, cfg Config, u updater) (Result, error) {
	if err := normal.Check(xs); err != nil {
		return Result{}, err
	}
	if sigma0 <= 0 {
		return Result{}, fmt.Errorf("optim: initial sigma %v: %w", sigma0, normal.ErrNonPositiveSigma)
	}

	mu, sigma := mu0, sigma0
	ev, err := normal.Evaluate(xs, mu, sigma)
	if err != nil {
		return Result{}, err
	}

	var history []Snapshot
	if cfg.TrackHistory {
		history = append(history, Snapshot{Iteration: 0, Mu: mu, Sigma: sigma, NLL: ev.NLL})
	}

	// Best point seen so far. Reported when the iteration cap is hit,
	// since guard-damped steps are not guaranteed to lower the NLL.
	bestMu, bestSigma, bestNLL := mu, sigma, ev.NLL

	for n := 0; n < cfg.MaxIterations; n++ {
		dMu, dSigma := u.step(ev)

		// Sigma guard: halve the step until the proposal has sigma > 0
		// and a finite NLL, or give up and report divergence.
		next, ok := proposeStep(xs, mu, sigma, dMu, dSigma)
		if !ok {
			return Result{
				Mu:         mu,
				SigmaSq:    sigma * sigma,
				Status:     Diverged,
				Iterations: n,
				History:    history,
			}, nil
		}

		prevNLL := ev.NLL
		mu, sigma, ev = next.mu, next.sigma, next.ev

		if ev.NLL < bestNLL {
			bestMu, bestSigma, bestNLL = mu, sigma, ev.NLL
		}

		if cfg.TrackHistory {
			history = append(history, Snapshot{Iteration: n + 1, Mu: mu, Sigma: sigma, NLL: ev.NLL})
		}

		if math.Abs(ev.NLL-prevNLL) < cfg.Tolerance {
			return Result{
				Mu:         mu,
				SigmaSq:    sigma * sigma,
				Status:     Converged,
				Iterations: n + 1,
				History:    history,
			}, nil
		}
	}

	return Result{
		Mu:         bestMu,
		SigmaSq:    bestSigma * bestSigma,
		Status:     MaxIterations,
		Iterations: cfg.MaxIterations,
		History:    history,
	}, nil
}

// proposal is an accepted step: the new point and its evaluation.
type proposal struct {
	mu    float64
	sigma float64
	ev    normal.Evaluation
}

// proposeStep applies (dMu, dSigma) to (mu, sigma), halving the step up to
// maxHalvings times until the proposed sigma is positive and the NLL is
// finite. Reports ok=false when the guard is exhausted.
func proposeStep(xs []float64, mu, sigma, dMu, dSigma float64) (proposal, bool) {
	scale := 1.0
	for h := 0; h <= maxHalvings; h++ {
		nextMu := mu - scale*dMu
		nextSigma := sigma - scale*dSigma

		if nextSigma > 0 {
			ev, err := normal.Evaluate(xs, nextMu, nextSigma)
			if err == nil && !math.IsNaN(ev.NLL) && !math.IsInf(ev.NLL, 0) {
				return proposal{mu: nextMu, sigma: nextSigma, ev: ev}, true
			}
		}
		scale /= 2
	}
	return proposal{}, false
}
