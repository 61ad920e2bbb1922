// Package main provides the gauss command line interface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gauss-ml/gauss/normal"
	"github.com/gauss-ml/gauss/optim"
	"github.com/gauss-ml/gauss/sample"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("gauss %s\n", version)
			return
		case "fit":
			if err := runFit(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "gauss fit: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("gauss - Normal distribution maximum-likelihood estimation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  fit        Fit a synthetic Normal sample (see fit -h)")
}

func runFit(args []string) error {
	fs := flag.NewFlagSet("fit", flag.ExitOnError)
	n := fs.Int("n", 500, "number of synthetic samples")
	mean := fs.Float64("mean", 2, "true mean of the synthetic data")
	stddev := fs.Float64("stddev", 3, "true standard deviation of the synthetic data")
	seed := fs.Int64("seed", 42, "RNG seed (negative for time-based)")
	lr := fs.Float64("lr", 0.001, "gradient descent learning rate")
	tol := fs.Float64("tol", 1e-10, "convergence tolerance on the NLL change")
	maxIter := fs.Int("max-iter", 10000, "iteration cap")
	adam := fs.Bool("adam", false, "use Adam instead of fixed-step descent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen, err := sample.New(sample.Config{Mean: *mean, StdDev: *stddev, Seed: *seed})
	if err != nil {
		return err
	}
	xs := gen.Draw(*n)

	closed, err := normal.EstimateClosedForm(xs)
	if err != nil {
		return err
	}
	fmt.Printf("data:        N=%d from Normal(%.4g, %.4g)\n", *n, *mean, *stddev)
	fmt.Printf("closed form: mu=%.6f sigma^2=%.6f\n", closed.Mu, closed.SigmaSq)

	cfg := optim.Config{
		LearningRate:  *lr,
		Tolerance:     *tol,
		MaxIterations: *maxIter,
	}

	// Start the descent away from the answer so the run demonstrates
	// actual convergence.
	descend := optim.Descend
	if *adam {
		descend = optim.DescendAdam
	}
	res, err := descend(xs, 0, 1, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("descent:     mu=%.6f sigma^2=%.6f (%s, %d iterations)\n",
		res.Mu, res.SigmaSq, res.Status, res.Iterations)
	return nil
}
