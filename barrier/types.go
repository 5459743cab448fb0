package barrier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("barrier: graph is nil")

	// ErrScorerNil is returned if the Integrator has no gateway scorer.
	ErrScorerNil = errors.New("barrier: scorer is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("barrier: invalid option supplied")
)

// Trip is the per-call context shared with the Navigator.
type Trip struct {
	Origin      core.NodeID
	Destination core.NodeID
	Agent       agent.Properties

	// UsedBarriers holds the barriers already turned into sub-goals.
	UsedBarriers map[core.BarrierID]bool
}

// NewTrip returns a Trip with an empty used-barrier set.
func NewTrip(origin, destination core.NodeID, a agent.Properties) *Trip {
	return &Trip{
		Origin:       origin,
		Destination:  destination,
		Agent:        a,
		UsedBarriers: make(map[core.BarrierID]bool),
	}
}

// Navigator finds barriers worth following.
type Navigator interface {
	// FindValidBarriers returns the barriers of region usable from node,
	// mapped to a score (lower is better). Nil or empty means none.
	FindValidBarriers(trip *Trip, node core.NodeID, region core.RegionID) map[core.BarrierID]float64

	// IdentifySubGoal picks one of valid and a reference edge running along
	// it inside region.
	IdentifySubGoal(trip *Trip, node core.NodeID, valid map[core.BarrierID]float64, region core.RegionID) (core.EdgeID, core.BarrierID, bool)
}

// Defaults of DirectionalNavigator.
const DefaultCone = 140.0

// DefaultPreferredTypes lists the barrier types chosen first, in order.
var DefaultPreferredTypes = []string{"water", "park"}

// NavigatorOption configures a DirectionalNavigator.
type NavigatorOption func(*NavigatorOptions)

// NavigatorOptions holds DirectionalNavigator parameters.
type NavigatorOptions struct {
	// Cone is the total opening, in degrees, around the bearing to the
	// destination inside which a barrier must lie.
	Cone float64

	// PreferredTypes are ranked before all other barrier types.
	PreferredTypes []string

	err error
}

// DefaultNavigatorOptions returns a 140° cone preferring water, then parks.
func DefaultNavigatorOptions() NavigatorOptions {
	return NavigatorOptions{
		Cone:           DefaultCone,
		PreferredTypes: append([]string(nil), DefaultPreferredTypes...),
	}
}

// WithCone sets the cone opening, 0 < deg ≤ 360.
func WithCone(deg float64) NavigatorOption {
	return func(o *NavigatorOptions) {
		if deg <= 0 || deg > 360 {
			o.err = fmt.Errorf("%w: Cone must be in (0,360] (%g)", ErrOptionViolation, deg)
			return
		}
		o.Cone = deg
	}
}

// WithPreferredTypes replaces the preferred barrier types. An empty list
// ranks all types equally.
func WithPreferredTypes(types ...string) NavigatorOption {
	return func(o *NavigatorOptions) {
		o.PreferredTypes = append([]string(nil), types...)
	}
}

// Integration is the outcome of one InsertSubGoals walk.
type Integration struct {
	Sequence []core.NodeID

	// SubGoals lists the inserted sub-goal nodes in walk order.
	SubGoals []core.NodeID
}
