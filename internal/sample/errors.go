package sample

import "errors"

// ErrNegativeStdDev is returned when a Config carries a negative StdDev.
var ErrNegativeStdDev = errors.New("sample: standard deviation must not be negative")
