// Package builder defines shared constants used by the city constructors.
package builder

// Method names used to prefix errors with the constructor name.
const (
	MethodGrid      = "Grid"
	MethodDistricts = "Districts"
	MethodRiver     = "River"
	MethodPark      = "Park"
)

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// Two cells per axis are needed for a street in each direction.
const MinGridDim = 2

// MaxJitter bounds WithJitter so that jittered cells never swap order.
const MaxJitter = 0.5

// Barrier type tags emitted by River and Park.
const (
	BarrierWater = "water"
	BarrierPark  = "park"
)
