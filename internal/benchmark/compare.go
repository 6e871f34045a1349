package benchmark

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// maxDigits caps the digits of precision reported for an exact float64 hit.
const maxDigits = 16

// Summary condenses one Result for cross-method comparison.
type Summary struct {
	Method       string
	Label        string
	Runs         int
	Calls        int
	FinalParam   int
	BestError    float64
	FinalError   float64 // mean over runs at the largest parameter
	TotalRuntime time.Duration
	MeanRuntime  time.Duration // per estimator call
	Digits       float64       // correct decimal digits at BestError
}

// Summarize reduces a Result to its Summary.
func Summarize(r Result) Summary {
	s := Summary{
		Method:    r.Method,
		Label:     r.Label,
		Runs:      len(r.Runs),
		BestError: math.Inf(1),
	}

	finalTotal := 0.0
	for _, run := range r.Runs {
		for _, m := range run.Measurements {
			s.Calls++
			s.TotalRuntime += m.Runtime
			if m.AbsError < s.BestError {
				s.BestError = m.AbsError
			}
		}
		if n := len(run.Measurements); n > 0 {
			last := run.Measurements[n-1]
			s.FinalParam = last.Param
			finalTotal += last.AbsError
		}
	}

	if s.Calls == 0 {
		s.BestError = math.NaN()
		s.FinalError = math.NaN()
		return s
	}

	s.MeanRuntime = s.TotalRuntime / time.Duration(s.Calls)
	s.FinalError = finalTotal / float64(s.Runs)
	s.Digits = digits(s.BestError)
	return s
}

// Compare summarizes every result and orders them from most to least
// precise; ties go to the cheaper method.
func Compare(results []Result) []Summary {
	summaries := make([]Summary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, Summarize(r))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.BestError != b.BestError {
			return a.BestError < b.BestError
		}
		return a.MeanRuntime < b.MeanRuntime
	})
	return summaries
}

func digits(absErr float64) float64 {
	if absErr <= 0 {
		return maxDigits
	}
	d := -math.Log10(absErr)
	if d > maxDigits {
		return maxDigits
	}
	if d < 0 {
		return 0
	}
	return d
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: best error %.3e (%.1f digits), mean runtime %s over %d calls",
		s.Method, s.BestError, s.Digits, s.MeanRuntime, s.Calls)
}
