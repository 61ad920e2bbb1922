package optim

import (
	"math"

	"github.com/gauss-ml/gauss/internal/normal"
)

// Adam hyperparameters, per Kingma & Ba (2014).
const (
	adamBeta1 = 0.9
	adamBeta2 = 0.999
	adamEps   = 1e-8
)

// adam is the adaptive update rule. It maintains exponential moving
// averages of the gradient (first moment) and squared gradient (second
// moment) per parameter, with bias correction:
//
//	m_t   = beta1 * m_{t-1} + (1-beta1) * g
//	v_t   = beta2 * v_{t-1} + (1-beta2) * g^2
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	step  = lr * m_hat / (sqrt(v_hat) + eps)
type adam struct {
	lr float64
	t  int

	mMu, vMu       float64
	mSigma, vSigma float64
}

func (a *adam) step(ev normal.Evaluation) (float64, float64) {
	a.t++

	bc1 := 1 - math.Pow(adamBeta1, float64(a.t))
	bc2 := 1 - math.Pow(adamBeta2, float64(a.t))

	a.mMu = adamBeta1*a.mMu + (1-adamBeta1)*ev.GradMu
	a.vMu = adamBeta2*a.vMu + (1-adamBeta2)*ev.GradMu*ev.GradMu

	a.mSigma = adamBeta1*a.mSigma + (1-adamBeta1)*ev.GradSigma
	a.vSigma = adamBeta2*a.vSigma + (1-adamBeta2)*ev.GradSigma*ev.GradSigma

	dMu := a.lr * (a.mMu / bc1) / (math.Sqrt(a.vMu/bc2) + adamEps)
	dSigma := a.lr * (a.mSigma / bc1) / (math.Sqrt(a.vSigma/bc2) + adamEps)

	return dMu, dSigma
}

// DescendAdam estimates (mu, sigma^2) by Adam gradient descent on the
// negative log-likelihood.
//
// Same state machine, guard, and termination semantics as Descend, with
// the fixed step replaced by Adam's bias-corrected adaptive step
// (beta1=0.9, beta2=0.999, eps=1e-8). The sigma guard damps the proposed
// step, not the learning rate, so the moment estimates advance once per
// accepted iteration.
//
// Adam normalizes the step by the gradient magnitude, which makes it far
// less sensitive to the scale mismatch between dNLL/dmu and dNLL/dsigma
// than the fixed-step rule.
func DescendAdam(xs []float64, mu0, sigma0 float64, cfg Config) (Result, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Result{}, err
	}
	return descend(xs, mu0, sigma0, cfg, &adam{lr: cfg.LearningRate})
}
