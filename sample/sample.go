// Copyright 2025 Gauss ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sample

import "github.com/gauss-ml/gauss/internal/sample"

// Config configures a Generator.
type Config = sample.Config

// Generator draws i.i.d. values from Normal(Mean, StdDev).
type Generator = sample.Generator

// ErrNegativeStdDev is returned when a Config carries a negative StdDev.
var ErrNegativeStdDev = sample.ErrNegativeStdDev

// New creates a Generator from cfg.
func New(cfg Config) (*Generator, error) {
	return sample.New(cfg)
}
