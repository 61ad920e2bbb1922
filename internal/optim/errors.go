package optim

import "errors"

// ErrInvalidConfig is returned when a Config field is explicitly set to an
// invalid value (negative learning rate, tolerance, or iteration cap).
var ErrInvalidConfig = errors.New("optim: invalid config")
