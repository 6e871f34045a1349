package estimator

import "errors"

// ErrInvalidWorkload is returned when a workload parameter is outside the range
// an estimator accepts (e.g. zero points for Monte Carlo).
var ErrInvalidWorkload = errors.New("invalid workload parameter")
