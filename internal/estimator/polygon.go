package estimator

import (
	"fmt"
	"math"
)

// DefaultDoublingIterations is the number of side doublings used by the
// startup demonstration, taking the hexagon to a 6144-gon.
const DefaultDoublingIterations = 10

// MinPolygonSides is the smallest polygon ArchimedesPolygon accepts.
const MinPolygonSides = 3

// ArchimedesDoubling starts from the regular hexagon inscribed in the unit
// circle (side length 1) and doubles the number of sides iterations times
// using the half-angle chord recurrence. The estimate is half the perimeter.
//
// Past roughly 20 iterations 4 - s² cancels catastrophically and the estimate
// stops improving. That is a property of the recurrence in float64.
func ArchimedesDoubling(iterations int) (float64, error) {
	if iterations < 0 {
		return 0, fmt.Errorf("%w: doubling needs a non-negative iteration count, got %d", ErrInvalidWorkload, iterations)
	}

	sides := 6.0
	side := 1.0
	for i := 0; i < iterations; i++ {
		side = math.Sqrt(2 - math.Sqrt(4-side*side))
		sides *= 2
	}

	return sides * side / 2, nil
}

// ArchimedesPolygon averages the perimeters of the regular polygons with the
// given number of sides inscribed in and circumscribed about the unit circle,
// divided by the diameter. The trigonometric functions use math.Pi, so this
// variant is not independent of the value it approximates.
func ArchimedesPolygon(sides int) (float64, error) {
	if sides < MinPolygonSides {
		return 0, fmt.Errorf("%w: polygon needs at least %d sides, got %d", ErrInvalidWorkload, MinPolygonSides, sides)
	}

	n := float64(sides)
	angle := radians(360 / (2 * n))

	inscribed := n * 2 * math.Sin(angle)
	circumscribed := n * 2 * math.Tan(angle)

	return (inscribed + circumscribed) / 2 / 2, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
