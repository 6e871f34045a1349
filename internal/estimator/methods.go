package estimator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

// Func computes one estimate of pi for a workload parameter.
type Func func(n int) (float64, error)

// Method names accepted by Lookup.
const (
	MethodMonteCarlo         = "monte-carlo"
	MethodAccumulator        = "accumulator"
	MethodArchimedes         = "archimedes"
	MethodArchimedesDoubling = "archimedes-doubling"
)

// ErrUnknownMethod is returned by Lookup for names it does not recognise.
var ErrUnknownMethod = errors.New("unknown estimation method")

// Lookup returns the estimator registered under name. rng is only used by
// Monte Carlo.
func Lookup(name string, rng *rand.Rand) (Func, error) {
	switch name {
	case MethodMonteCarlo:
		return func(n int) (float64, error) { return MonteCarlo(rng, n) }, nil
	case MethodAccumulator:
		return Nilakantha, nil
	case MethodArchimedes:
		return ArchimedesPolygon, nil
	case MethodArchimedesDoubling:
		return ArchimedesDoubling, nil
	}
	return nil, fmt.Errorf("%w %q (valid: %v)", ErrUnknownMethod, name, Methods())
}

// Methods lists the names accepted by Lookup, sorted.
func Methods() []string {
	names := []string{MethodMonteCarlo, MethodAccumulator, MethodArchimedes, MethodArchimedesDoubling}
	sort.Strings(names)
	return names
}
