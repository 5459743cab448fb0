package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
	"github.com/katalvlaran/pedroute/store"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("simulation: graph is nil")

	// ErrPlannerNil is returned by NewRunner without a planner.
	ErrPlannerNil = errors.New("simulation: planner is nil")

	// ErrBadBand is returned for an empty or negative distance band.
	ErrBadBand = errors.New("simulation: invalid distance band")

	// ErrNoCandidates is returned when no origin/destination pair fits the
	// distance band.
	ErrNoCandidates = errors.New("simulation: no origin/destination pair in band")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulation: invalid option supplied")
)

// Trip is one agent walking from Origin to Destination.
type Trip struct {
	Origin      core.NodeID
	Destination core.NodeID
	Agent       agent.Properties
}

// RouteSaver persists routes; *store.Store implements it.
type RouteSaver interface {
	Save(ctx context.Context, routes ...store.Route) error
}

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner parameters.
type Options struct {
	// Workers bounds the number of trips planned at once.
	Workers int

	Logger  logging.Logger
	Metrics *metrics.Registry

	// Saver, when set, receives all routes of a run in one call.
	Saver RouteSaver

	// Clock stamps routes; tests pin it.
	Clock func() time.Time

	err error
}

// DefaultWorkers is the default Runner concurrency.
const DefaultWorkers = 4

// DefaultOptions returns four workers, a no-op logger and no persistence.
func DefaultOptions() Options {
	return Options{
		Workers: DefaultWorkers,
		Logger:  logging.NewNopLogger(),
		Clock:   time.Now,
	}
}

// WithWorkers sets the concurrency, n ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
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

// WithMetrics records trip outcomes into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithSaver persists the routes of every run through s.
func WithSaver(s RouteSaver) Option {
	return func(o *Options) { o.Saver = s }
}

// WithClock replaces the route timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// Report summarises one Runner.Run call.
type Report struct {
	RunID string

	// Routes holds the planned routes in trip order; skipped trips leave
	// no entry.
	Routes []store.Route

	Skipped   int
	Fallbacks int
	Duration  time.Duration
}
