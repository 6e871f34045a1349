package estimator

import "fmt"

// Nilakantha sums the first terms of the Nilakantha series
//
//	pi = 3 + 4/(2·3·4) - 4/(4·5·6) + 4/(6·7·8) - ...
//
// Zero terms yields exactly 3.
func Nilakantha(terms int) (float64, error) {
	if terms < 0 {
		return 0, fmt.Errorf("%w: accumulator needs a non-negative term count, got %d", ErrInvalidWorkload, terms)
	}

	estimate := 3.0
	sign := 1.0
	for n := 1; n <= terms; n++ {
		k := float64(2 * n)
		estimate += sign * (4 / (k * (k + 1) * (k + 2)))
		sign = -sign
	}
	return estimate, nil
}
