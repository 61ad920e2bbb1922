package normal

import "gonum.org/v1/gonum/floats"

// EstimateClosedForm computes the analytic estimates of the mean and
// variance of a Normal distribution from i.i.d. samples.
//
// Estimates:
//
//	mu_hat       = (1/N) * sum(x_i)
//	sigma_sq_hat = (1/(N-1)) * sum((x_i - mu_hat)^2)
//
// The variance uses Bessel's correction (divide by N-1) to remove
// estimator bias. The mean is the exact maximizer of the likelihood;
// SigmaSq is non-negative for every valid input.
//
// Pure function: calling it twice on the same slice yields bit-identical
// results, and the input is never modified.
//
// Returns ErrTooFewSamples when len(xs) < 2, or ErrNonFiniteSample when
// any value is NaN or infinite.
func EstimateClosedForm(xs []float64) (Estimate, error) {
	if err := Check(xs); err != nil {
		return Estimate{}, err
	}

	n := float64(len(xs))
	mu := floats.Sum(xs) / n

	r := residuals(xs, mu)
	ss := floats.Dot(r, r)

	return Estimate{Mu: mu, SigmaSq: ss / (n - 1)}, nil
}
