package gateway

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pedroute/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("gateway: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gateway: invalid option supplied")
)

// AnyRegion is the Query.Desired value accepting any neighbouring region.
const AnyRegion core.RegionID = core.NoRegion

// Defaults.
const (
	DefaultDirectionTolerance = 140.0
	DefaultFallbackCone       = 90.0
	DefaultParallelThreshold  = 32
)

// Query is one FindGateway request.
type Query struct {
	// Current is the node the agent stands on; it belongs to Region.
	Current core.NodeID
	Region  core.RegionID

	// Desired restricts the target region; AnyRegion accepts all.
	Desired core.RegionID

	// Destination is the global destination of the trip.
	Destination core.NodeID

	// Visited regions are never re-entered.
	Visited map[core.RegionID]bool

	// BadExits are pairs that already led to a dead end in this attempt.
	BadExits map[core.GatewayKey]bool
}

// Class is the classification of one candidate gateway.
type Class int

const (
	// Dropped candidates point away from the destination and are unusable.
	Dropped Class = iota
	// Fallback candidates are used only when no valid one exists.
	Fallback
	// Valid candidates head towards the destination.
	Valid
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Valid:
		return "valid"
	case Fallback:
		return "fallback"
	default:
		return "dropped"
	}
}

// Candidate is one evaluated gateway.
type Candidate struct {
	Gateway core.Gateway
	Class   Class
	Cost    float64

	IsCurrentExit    bool
	EntryInDirection bool
	ExitInDirection  bool
}

// Option configures a Scorer. Invalid values are recorded and surfaced as
// ErrOptionViolation by NewScorer.
type Option func(*Options)

// Options holds the Scorer parameters.
type Options struct {
	// DirectionTolerance is the maximal deviation, in degrees, for an exit or
	// entry to count as "in direction" of the destination.
	DirectionTolerance float64

	// FallbackCone is the maximal deviation, in degrees, of the walk to a
	// non-current exit for it to serve as a fallback.
	FallbackCone float64

	// Workers bounds concurrent candidate evaluation; 1 is sequential.
	Workers int

	// ParallelThreshold is the minimum candidate count before fanning out.
	ParallelThreshold int

	// OnEvaluate, if set, receives the number of candidates evaluated per call.
	OnEvaluate func(candidates int)

	err error
}

// DefaultOptions returns tolerance 140°, fallback cone 90°, sequential
// evaluation and a parallel threshold of 32 candidates.
func DefaultOptions() Options {
	return Options{
		DirectionTolerance: DefaultDirectionTolerance,
		FallbackCone:       DefaultFallbackCone,
		Workers:            1,
		ParallelThreshold:  DefaultParallelThreshold,
	}
}

// WithDirectionTolerance sets the in-direction tolerance, 0 < deg ≤ 180.
func WithDirectionTolerance(deg float64) Option {
	return func(o *Options) {
		if deg <= 0 || deg > 180 {
			o.err = fmt.Errorf("%w: DirectionTolerance must be in (0,180] (%g)", ErrOptionViolation, deg)
			return
		}
		o.DirectionTolerance = deg
	}
}

// WithFallbackCone sets the fallback cone, 0 ≤ deg ≤ 180.
func WithFallbackCone(deg float64) Option {
	return func(o *Options) {
		if deg < 0 || deg > 180 {
			o.err = fmt.Errorf("%w: FallbackCone must be in [0,180] (%g)", ErrOptionViolation, deg)
			return
		}
		o.FallbackCone = deg
	}
}

// WithWorkers bounds concurrent evaluation; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithParallelThreshold sets the minimum candidate count for parallel
// evaluation; n must be ≥ 1.
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ParallelThreshold must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}

// WithOnEvaluate registers a hook receiving the candidate count of each call.
func WithOnEvaluate(fn func(candidates int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvaluate = fn
		}
	}
}
