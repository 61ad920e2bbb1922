package optim

import "github.com/gauss-ml/gauss/internal/normal"

// vanilla is the fixed-step gradient descent update.
//
//	mu    -= lr * dNLL/dmu
//	sigma -= lr * dNLL/dsigma
type vanilla struct {
	lr float64
}

func (v vanilla) step(ev normal.Evaluation) (float64, float64) {
	return v.lr * ev.GradMu, v.lr * ev.GradSigma
}

// Descend estimates (mu, sigma^2) by fixed-step gradient descent on the
// negative log-likelihood, starting from (mu0, sigma0).
//
// Each iteration evaluates the NLL and gradient at the current point and
// moves against the gradient:
//
//	mu_{n+1}    = mu_n    - eta * dNLL/dmu
//	sigma_{n+1} = sigma_n - eta * dNLL/dsigma
//
// A proposed step with sigma <= 0 or a non-finite NLL is halved and
// retried a bounded number of times; exhausting the guard ends the run
// with Status Diverged and the last finite parameters. The run ends with
// Converged when the NLL change drops below Config.Tolerance, or with
// MaxIterations when the cap is hit first.
//
// Errors are returned only for invalid inputs: a bad sample set, a
// non-positive sigma0, or an invalid Config. Diverged and MaxIterations
// are statuses on the Result, not errors.
func Descend(xs []float64, mu0, sigma0 float64, cfg Config) (Result, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Result{}, err
	}
	return descend(xs, mu0, sigma0, cfg, vanilla{lr: cfg.LearningRate})
}
