package normal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ln(2*pi), the constant term of the Normal log-density.
const log2Pi = 1.8378770664093453

// Evaluate computes the negative log-likelihood of the samples under
// Normal(mu, sigma), together with its gradient.
//
// For N i.i.d. samples sharing one (mu, sigma):
//
//	NLL(mu, sigma) = N*ln(sigma) + (N/2)*ln(2*pi) + sum((x_i - mu)^2) / (2*sigma^2)
//	dNLL/dmu       = -sum(x_i - mu) / sigma^2
//	dNLL/dsigma    = N/sigma - sum((x_i - mu)^2) / sigma^3
//
// The residual sums are accumulated directly from (x_i - mu), which stays
// stable for large N and large |mu|.
//
// Returns ErrNonPositiveSigma when sigma <= 0, and the same input
// validation errors as EstimateClosedForm. Pure function.
func Evaluate(xs []float64, mu, sigma float64) (Evaluation, error) {
	if err := Check(xs); err != nil {
		return Evaluation{}, err
	}
	if sigma <= 0 {
		return Evaluation{}, fmt.Errorf("%w: got %v", ErrNonPositiveSigma, sigma)
	}

	n := float64(len(xs))
	r := residuals(xs, mu)
	sum := floats.Sum(r)   // sum(x_i - mu)
	ss := floats.Dot(r, r) // sum((x_i - mu)^2)

	sigmaSq := sigma * sigma

	return Evaluation{
		NLL:       n*math.Log(sigma) + 0.5*n*log2Pi + ss/(2*sigmaSq),
		GradMu:    -sum / sigmaSq,
		GradSigma: n/sigma - ss/(sigmaSq*sigma),
	}, nil
}
