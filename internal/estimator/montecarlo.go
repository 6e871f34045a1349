package estimator

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MonteCarlo estimates pi by sampling points uniformly in the unit square and
// counting how many land inside the quarter circle x² + y² ≤ 1.
// The ratio inside/points approximates pi/4.
func MonteCarlo(rng *rand.Rand, points int) (float64, error) {
	if points < 1 {
		return 0, fmt.Errorf("%w: monte carlo needs at least 1 point, got %d", ErrInvalidWorkload, points)
	}
	if rng == nil {
		return 0, fmt.Errorf("monte carlo: nil random source")
	}

	inside := 0
	for i := 0; i < points; i++ {
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y <= 1 {
			inside++
		}
	}

	return 4 * (float64(inside) / float64(points)), nil
}

// NewSource returns a generator seeded with seed. A zero seed draws a fresh
// seed from the clock so repeated runs show their natural variance.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
