// Package sample generates synthetic i.i.d. draws from a Normal
// distribution.
//
// The estimators in internal/normal and internal/optim only consume a
// slice of observations; this package is the data source used by the
// examples, the CLI, and the statistical consistency tests.
package sample

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config configures a Generator.
type Config struct {
	// Mean is the true mean of the generated distribution. Default 0.
	Mean float64

	// StdDev is the true standard deviation. Must not be negative;
	// 0 defaults to 1.
	StdDev float64

	// Seed for reproducibility. Negative = time-based.
	Seed int64
}

// Generator draws i.i.d. values from Normal(Mean, StdDev).
//
// A Generator with a fixed seed produces the same sequence on every run.
// Generators are not safe for concurrent use; create one per goroutine.
type Generator struct {
	dist distuv.Normal
}

// New creates a Generator from cfg.
//
// Returns ErrNegativeStdDev when cfg.StdDev < 0.
func New(cfg Config) (*Generator, error) {
	if cfg.StdDev < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeStdDev, cfg.StdDev)
	}
	if cfg.StdDev == 0 {
		cfg.StdDev = 1
	}

	seed := cfg.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		dist: distuv.Normal{
			Mu:    cfg.Mean,
			Sigma: cfg.StdDev,
			Src:   rand.NewSource(uint64(seed)),
		},
	}, nil
}

// Draw returns n independent draws from the configured distribution.
func (g *Generator) Draw(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.dist.Rand()
	}
	return xs
}
