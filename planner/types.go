package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("planner: graph is nil")

	// ErrUnreachable is returned by the optional reachability check when no
	// chain of gateways links the origin region to the destination region.
	ErrUnreachable = errors.New("planner: destination region unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// Option configures a Planner.
type Option func(*Options)

// Options holds Planner collaborators and switches.
type Options struct {
	// Navigator selects barrier sub-goals. Nil selects a
	// barrier.DirectionalNavigator built from NavigatorOptions.
	Navigator barrier.Navigator

	// NavigatorOptions configure the default navigator.
	NavigatorOptions []barrier.NavigatorOption

	// ScorerOptions configure the gateway scorer.
	ScorerOptions []gateway.Option

	// Logger receives debug events for backtracks and fallbacks.
	Logger logging.Logger

	// Metrics, when set, records plan outcomes.
	Metrics *metrics.Registry

	// ReachabilityCheck rejects origin/destination pairs whose regions are
	// not linked by gateways before planning starts.
	ReachabilityCheck bool

	err error
}

// DefaultOptions returns options with the default navigator, a no-op logger
// and no metrics.
func DefaultOptions() Options {
	return Options{Logger: logging.NewNopLogger()}
}

// WithNavigator replaces the barrier navigator.
func WithNavigator(nav barrier.Navigator) Option {
	return func(o *Options) {
		if nav == nil {
			o.err = fmt.Errorf("%w: Navigator cannot be nil", ErrOptionViolation)
			return
		}
		o.Navigator = nav
	}
}

// WithNavigatorOptions configures the default barrier navigator.
func WithNavigatorOptions(opts ...barrier.NavigatorOption) Option {
	return func(o *Options) {
		o.NavigatorOptions = append(o.NavigatorOptions, opts...)
	}
}

// WithScorerOptions configures the gateway scorer.
func WithScorerOptions(opts ...gateway.Option) Option {
	return func(o *Options) {
		o.ScorerOptions = append(o.ScorerOptions, opts...)
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records plan outcomes into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithReachabilityCheck enables the region reachability precondition.
func WithReachabilityCheck() Option {
	return func(o *Options) { o.ReachabilityCheck = true }
}

// PlanOption tunes a single planning call.
type PlanOption func(*planConfig)

type planConfig struct {
	badExits []core.GatewayKey
}

// WithBadExits marks gateway pairs as bad before planning starts.
func WithBadExits(keys ...core.GatewayKey) PlanOption {
	return func(c *planConfig) {
		c.badExits = append(c.badExits, keys...)
	}
}

// Result is the outcome of one planning call.
type Result struct {
	// Sequence is the deduplicated coarse route, origin first and
	// destination last.
	Sequence []core.NodeID

	// Raw is the gateway sequence before barrier integration and dedup.
	Raw []core.NodeID

	// SubGoals lists the barrier sub-goals inserted into Sequence.
	SubGoals []core.NodeID

	// Steps counts Planning iterations, Hops the successful ones.
	Steps int
	Hops  int

	// Backtracks counts bad-exit backtracks.
	Backtracks int

	// Fallback is set when a region had no usable exit and no hop was
	// left to undo; the destination was then appended directly.
	Fallback bool
}
