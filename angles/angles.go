// Package angles provides the bearing and distance primitives used for
// directional scoring of gateways and barriers.
//
// Bearings are expressed in degrees in [0, 360), measured counter-clockwise
// from the positive x axis of the planar coordinate system the city graph is
// projected in. Differences between bearings are always the minimal angle
// between the two directions, in [0, 180].
//
// Complexity: every function is O(1).
package angles

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// fullTurn is one complete revolution in degrees.
const fullTurn = 360.0

// halfTurn is the largest possible minimal difference between two bearings.
const halfTurn = 180.0

// Bearing returns the direction from a to b in degrees in [0, 360).
// Coincident points yield 0.
func Bearing(a, b orb.Point) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dy, dx) * halfTurn / math.Pi

	return Normalize(deg)
}

// Normalize folds any angle into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, fullTurn)
	if deg < 0 {
		deg += fullTurn
	}
	// math.Mod(-0.0000001, 360) + 360 rounds to 360 in float64.
	if deg >= fullTurn {
		deg = 0
	}

	return deg
}

// Difference returns the minimal angular difference between two bearings,
// in [0, 180]. It is symmetric in its arguments.
func Difference(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > halfTurn {
		d = fullTurn - d
	}

	return d
}

// IsWithinTolerance reports whether angle deviates from reference by at most
// tolerance degrees.
func IsWithinTolerance(reference, angle, tolerance float64) bool {
	return Difference(reference, angle) <= tolerance
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
