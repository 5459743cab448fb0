package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
	"github.com/katalvlaran/pedroute/planner"
	"github.com/katalvlaran/pedroute/store"
)

// Runner plans batches of trips. It is safe for concurrent use.
type Runner struct {
	planner *planner.Planner
	opts    Options
	log     logging.Logger
}

// NewRunner returns a Runner over p.
//
// Errors:
//   - ErrPlannerNil, ErrOptionViolation.
func NewRunner(p *planner.Planner, opts ...Option) (*Runner, error) {
	if p == nil {
		return nil, ErrPlannerNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Runner{planner: p, opts: o, log: o.Logger.With(logging.Component("simulation"))}, nil
}

// outcome is the per-trip result slot.
type outcome struct {
	route    *store.Route
	fallback bool
}

// Run plans every trip. Trips whose destination region is unreachable are
// skipped with a warning; any other planning error cancels the run.
// Agents without region-based navigation walk straight from origin to
// destination.
func (r *Runner) Run(ctx context.Context, trips []Trip) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := r.log.With(logging.RunID(runID))
	results := make([]outcome, len(trips))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)
	for i := range trips {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out, err := r.planTrip(runID, trips[i])
			if err != nil {
				if errors.Is(err, planner.ErrUnreachable) {
					log.Warn("skipping unreachable trip",
						logging.Agent(trips[i].Agent.ID),
						logging.Node(int(trips[i].Origin)),
						logging.Int("destination", int(trips[i].Destination)))
					r.opts.Metrics.RecordTrip(metrics.TripSkipped)
					return nil
				}
				r.opts.Metrics.RecordTrip(metrics.TripFailed)
				return fmt.Errorf("trip %d: %w", i, err)
			}
			r.opts.Metrics.RecordTrip(metrics.TripPlanned)
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("run failed", logging.Error(err))
		return nil, fmt.Errorf("Run: %w", err)
	}

	rep := &Report{RunID: runID, Routes: make([]store.Route, 0, len(trips))}
	for _, out := range results {
		if out.route == nil {
			rep.Skipped++
			continue
		}
		if out.fallback {
			rep.Fallbacks++
		}
		rep.Routes = append(rep.Routes, *out.route)
	}

	if r.opts.Saver != nil && len(rep.Routes) > 0 {
		if err := r.opts.Saver.Save(ctx, rep.Routes...); err != nil {
			return nil, fmt.Errorf("Run: save: %w", err)
		}
		r.opts.Metrics.RecordRoutesStored(len(rep.Routes))
	}

	rep.Duration = time.Since(start)
	r.opts.Metrics.RecordRun(rep.Duration)
	log.Info("run finished",
		logging.Count(len(rep.Routes)),
		logging.Int("skipped", rep.Skipped),
		logging.Int("fallbacks", rep.Fallbacks),
		logging.Latency(rep.Duration))

	return rep, nil
}

// planTrip plans one trip into a route.
func (r *Runner) planTrip(runID string, t Trip) (outcome, error) {
	seq := []core.NodeID{t.Origin, t.Destination}
	fallback := false
	if t.Agent.RegionBasedNavigation {
		res, err := r.planner.Plan(t.Origin, t.Destination, t.Agent)
		if err != nil {
			return outcome{}, err
		}
		seq, fallback = res.Sequence, res.Fallback
	}

	return outcome{
		route: &store.Route{
			ID:          uuid.NewString(),
			RunID:       runID,
			AgentID:     t.Agent.ID,
			Origin:      t.Origin,
			Destination: t.Destination,
			RouteChoice: t.Agent.Label(),
			Sequence:    seq,
			Fallback:    fallback,
			CreatedAt:   r.opts.Clock().UTC(),
		},
		fallback: fallback,
	}, nil
}
