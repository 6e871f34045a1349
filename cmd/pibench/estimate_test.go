package main

import (
	"strings"
	"testing"

	"pibench/internal/estimator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCmd(t *testing.T) {
	smallSweeps(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"accumulator first term", []string{"estimate", "accumulator", "1"}, "Estimate:       3.1666666667"},
		{"accumulator zero terms", []string{"estimate", "accumulator", "0"}, "Estimate:       3.0000000000"},
		{"hexagon", []string{"estimate", "archimedes-doubling", "0"}, "Estimate:       3.0000000000"},
		{"polygon", []string{"estimate", "archimedes", "60"}, "Workload:       60"},
		{"monte carlo", []string{"estimate", "monte-carlo", "1000", "--seed", "3"}, "Method:         monte-carlo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(rootCmd, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "Absolute error:")
			assert.Contains(t, out, "Runtime:")
		})
	}
}

func TestEstimateCmd_MonteCarloSeeded(t *testing.T) {
	smallSweeps(t)

	first, err := executeCommand(rootCmd, "estimate", "monte-carlo", "5000", "--seed", "99")
	require.NoError(t, err)
	second, err := executeCommand(rootCmd, "estimate", "monte-carlo", "5000", "--seed", "99")
	require.NoError(t, err)

	estimateLine := func(out string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "Estimate:") {
				return line
			}
		}
		return ""
	}
	assert.NotEmpty(t, estimateLine(first))
	assert.Equal(t, estimateLine(first), estimateLine(second))
}

func TestEstimateCmd_Errors(t *testing.T) {
	smallSweeps(t)

	t.Run("single point guarded", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "estimate", "monte-carlo", "0")
		assert.ErrorIs(t, err, estimator.ErrInvalidWorkload)
	})

	t.Run("too few sides", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "estimate", "archimedes", "2")
		assert.ErrorIs(t, err, estimator.ErrInvalidWorkload)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "estimate", "leibniz", "10")
		assert.ErrorIs(t, err, estimator.ErrUnknownMethod)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "estimate", "accumulator", "many")
		assert.ErrorContains(t, err, `invalid workload parameter "many"`)
	})

	t.Run("missing args", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "estimate", "accumulator")
		assert.Error(t, err)
	})
}
