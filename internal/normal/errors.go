package normal

import "errors"

var (
	// ErrTooFewSamples is returned when a sample set has fewer than 2 values.
	// Bessel's correction divides by N-1, so variance is undefined below that.
	ErrTooFewSamples = errors.New("normal: need at least 2 samples")

	// ErrNonFiniteSample is returned when a sample set contains NaN or ±Inf.
	ErrNonFiniteSample = errors.New("normal: sample is not finite")

	// ErrNonPositiveSigma is returned when a sigma <= 0 is supplied.
	// The Normal density is undefined for non-positive scale.
	ErrNonPositiveSigma = errors.New("normal: sigma must be positive")
)
