package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauss-ml/gauss/internal/normal"
	"github.com/gauss-ml/gauss/internal/optim"
	"github.com/gauss-ml/gauss/internal/sample"
)

// drawFixture returns a deterministic synthetic dataset from
// Normal(mean, stddev).
func drawFixture(t *testing.T, n int, mean, stddev float64) []float64 {
	t.Helper()
	gen, err := sample.New(sample.Config{Mean: mean, StdDev: stddev, Seed: 7})
	require.NoError(t, err)
	return gen.Draw(n)
}

func TestDescend_ConvergesToClosedForm(t *testing.T) {
	xs := drawFixture(t, 1000, 2, 3)

	closed, err := normal.EstimateClosedForm(xs)
	require.NoError(t, err)

	res, err := optim.Descend(xs, closed.Mu+0.5, closed.Sigma()+0.5, optim.Config{
		LearningRate:  0.001,
		Tolerance:     1e-12,
		MaxIterations: 50000,
	})
	require.NoError(t, err)

	assert.Equal(t, optim.Converged, res.Status)
	assert.InDelta(t, closed.Mu, res.Mu, 0.01)
	// The NLL minimizer is the 1/N variance; at N=1000 it differs from
	// the Bessel-corrected closed form by a factor 999/1000.
	assert.InDelta(t, closed.SigmaSq, res.SigmaSq, 0.05)
	assert.Greater(t, res.Iterations, 0)
}

func TestDescend_StartAtStationaryPoint(t *testing.T) {
	// At (mean, sqrt(sum sq / N)) the gradient vanishes, so the very
	// first step changes nothing and the NLL delta is zero.
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.Descend(xs, 3, math.Sqrt2, optim.Config{})
	require.NoError(t, err)

	assert.Equal(t, optim.Converged, res.Status)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 3.0, res.Mu, 1e-9)
	assert.InDelta(t, 2.0, res.SigmaSq, 1e-9)
}

func TestDescend_MaxIterations(t *testing.T) {
	// A microscopic learning rate cannot move the NLL below the
	// tolerance in 5 steps; the cap is a reported outcome, not an error.
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.Descend(xs, 0, 5, optim.Config{
		LearningRate:  1e-6,
		Tolerance:     1e-15,
		MaxIterations: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, optim.MaxIterations, res.Status)
	assert.Equal(t, 5, res.Iterations)
	assert.False(t, math.IsNaN(res.Mu))
	assert.False(t, math.IsNaN(res.SigmaSq))
}

func TestDescend_Diverged(t *testing.T) {
	// An absurd learning rate drives sigma so far negative that 20
	// halvings cannot rescue the step. The caller still gets the last
	// finite parameters, never NaN or Inf.
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.Descend(xs, 3, 10, optim.Config{
		LearningRate:  1e9,
		Tolerance:     1e-12,
		MaxIterations: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, optim.Diverged, res.Status)
	assert.False(t, math.IsNaN(res.Mu) || math.IsInf(res.Mu, 0))
	assert.False(t, math.IsNaN(res.SigmaSq) || math.IsInf(res.SigmaSq, 0))
	assert.Greater(t, res.SigmaSq, 0.0)
}

func TestDescend_GuardKeepsSigmaPositive(t *testing.T) {
	// Learning rate large enough to propose sigma <= 0 but small enough
	// for the halving guard to rescue every step: sigma must stay
	// strictly positive along the whole trajectory.
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.Descend(xs, 3, 5, optim.Config{
		LearningRate:  10,
		Tolerance:     1e-12,
		MaxIterations: 200,
		TrackHistory:  true,
	})
	require.NoError(t, err)

	require.NotEmpty(t, res.History)
	for _, snap := range res.History {
		assert.Greater(t, snap.Sigma, 0.0, "iteration %d", snap.Iteration)
		assert.False(t, math.IsNaN(snap.NLL) || math.IsInf(snap.NLL, 0))
	}
}

func TestDescend_History(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.Descend(xs, 2.5, 2, optim.Config{
		LearningRate:  0.01,
		Tolerance:     1e-12,
		MaxIterations: 5000,
		TrackHistory:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.History)

	first := res.History[0]
	assert.Equal(t, 0, first.Iteration)
	assert.Equal(t, 2.5, first.Mu)
	assert.Equal(t, 2.0, first.Sigma)

	// One snapshot for the start plus one per accepted iteration.
	assert.Len(t, res.History, res.Iterations+1)

	// With a small fixed step the NLL decreases monotonically.
	for i := 1; i < len(res.History); i++ {
		assert.LessOrEqual(t, res.History[i].NLL, res.History[i-1].NLL+1e-12,
			"iteration %d", res.History[i].Iteration)
	}
}

func TestDescend_NoHistoryByDefault(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.Descend(xs, 3, 1.5, optim.Config{})
	require.NoError(t, err)
	assert.Nil(t, res.History)
	assert.Equal(t, optim.Converged, res.Status)
}

func TestDescend_InvalidInput(t *testing.T) {
	_, err := optim.Descend(nil, 0, 1, optim.Config{})
	assert.ErrorIs(t, err, normal.ErrTooFewSamples)

	_, err = optim.Descend([]float64{1, math.NaN()}, 0, 1, optim.Config{})
	assert.ErrorIs(t, err, normal.ErrNonFiniteSample)

	_, err = optim.Descend([]float64{1, 2, 3}, 0, 0, optim.Config{})
	assert.ErrorIs(t, err, normal.ErrNonPositiveSigma)

	_, err = optim.Descend([]float64{1, 2, 3}, 0, -2, optim.Config{})
	assert.ErrorIs(t, err, normal.ErrNonPositiveSigma)
}

func TestDescend_InvalidConfig(t *testing.T) {
	xs := []float64{1, 2, 3}

	_, err := optim.Descend(xs, 0, 1, optim.Config{LearningRate: -0.1})
	assert.ErrorIs(t, err, optim.ErrInvalidConfig)

	_, err = optim.Descend(xs, 0, 1, optim.Config{Tolerance: -1e-9})
	assert.ErrorIs(t, err, optim.ErrInvalidConfig)

	_, err = optim.Descend(xs, 0, 1, optim.Config{MaxIterations: -1})
	assert.ErrorIs(t, err, optim.ErrInvalidConfig)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "converged", optim.Converged.String())
	assert.Equal(t, "max-iterations", optim.MaxIterations.String())
	assert.Equal(t, "diverged", optim.Diverged.String())
}

func TestDescendAdam_ReachesOptimum(t *testing.T) {
	xs := drawFixture(t, 1000, 2, 3)

	closed, err := normal.EstimateClosedForm(xs)
	require.NoError(t, err)

	res, err := optim.DescendAdam(xs, 0, 1, optim.Config{
		LearningRate:  0.01,
		Tolerance:     1e-10,
		MaxIterations: 20000,
		TrackHistory:  true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, optim.Diverged, res.Status)
	assert.InDelta(t, closed.Mu, res.Mu, 0.05)
	assert.InDelta(t, closed.SigmaSq, res.SigmaSq, 0.5)

	// Adam oscillates near the optimum, but the run as a whole must
	// have reduced the NLL.
	require.NotEmpty(t, res.History)
	assert.Less(t, res.History[len(res.History)-1].NLL, res.History[0].NLL)
}

func TestDescendAdam_Diverged(t *testing.T) {
	// Adam's first step is close to lr * sign(gradient). With sigma
	// above the stationary point the sigma gradient is positive, so an
	// absurd learning rate proposes sigma - 1e9 and 20 halvings still
	// leave the proposal negative.
	xs := []float64{1, 2, 3, 4, 5}

	res, err := optim.DescendAdam(xs, 3, 2, optim.Config{
		LearningRate:  1e9,
		Tolerance:     1e-12,
		MaxIterations: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, optim.Diverged, res.Status)
	assert.False(t, math.IsNaN(res.Mu))
	assert.False(t, math.IsNaN(res.SigmaSq))
}
