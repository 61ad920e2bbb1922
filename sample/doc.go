// Copyright 2025 Gauss ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sample generates synthetic i.i.d. draws from a Normal
// distribution.
//
// # Overview
//
// The estimators in packages normal and optim consume a plain slice of
// observations; this package produces such slices with a known true mean
// and standard deviation, which makes it the natural data source for
// demos and statistical consistency checks.
//
// # Basic Usage
//
//	import "github.com/gauss-ml/gauss/sample"
//
//	gen, err := sample.New(sample.Config{Mean: 2, StdDev: 3, Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xs := gen.Draw(500)
//
// A fixed seed reproduces the same sequence on every run; a negative
// seed picks a time-based one.
package sample
