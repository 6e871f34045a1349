package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilakantha(t *testing.T) {
	tests := []struct {
		name  string
		terms int
		want  float64
	}{
		{"zero terms", 0, 3},
		{"one term", 1, 3 + 4.0/24},
		{"two terms", 2, 3 + 4.0/24 - 4.0/120},
		{"three terms", 3, 3 + 4.0/24 - 4.0/120 + 4.0/336},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nilakantha(tt.terms)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestNilakantha_ZeroIsExact(t *testing.T) {
	got, err := Nilakantha(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestNilakantha_FirstTermTenDecimals(t *testing.T) {
	got, err := Nilakantha(1)
	require.NoError(t, err)
	assert.InDelta(t, 3.1666666667, got, 1e-10)
}

func TestNilakantha_Negative(t *testing.T) {
	_, err := Nilakantha(-1)
	assert.ErrorIs(t, err, ErrInvalidWorkload)
}

func TestNilakantha_AlternatesAroundPi(t *testing.T) {
	prevOdd := math.Inf(1)
	for terms := 1; terms <= 200; terms++ {
		got, err := Nilakantha(terms)
		require.NoError(t, err)

		if terms%2 == 0 {
			assert.Greater(t, got, 3.0, "terms=%d", terms)
			assert.Less(t, got, math.Pi, "terms=%d", terms)
			continue
		}
		assert.Greater(t, got, math.Pi, "terms=%d", terms)
		assert.Less(t, got, prevOdd, "terms=%d", terms)
		prevOdd = got
	}
}

func TestNilakantha_Pure(t *testing.T) {
	a, _ := Nilakantha(100000)
	b, _ := Nilakantha(100000)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}
