package planner

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/barrier"
	"github.com/katalvlaran/pedroute/bfs"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
	"github.com/katalvlaran/pedroute/logging"
	"github.com/katalvlaran/pedroute/metrics"
)

// Planner computes coarse routes over one immutable graph. It is safe for
// concurrent use.
type Planner struct {
	g          *core.Graph
	scorer     *gateway.Scorer
	integrator *barrier.Integrator
	opts       Options
	log        logging.Logger
}

// NewPlanner wires a scorer and a barrier integrator over g.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - gateway.ErrOptionViolation and barrier.ErrOptionViolation from the
//     collaborator options.
func NewPlanner(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	scorer, err := newScorer(g, o)
	if err != nil {
		return nil, fmt.Errorf("NewPlanner: %w", err)
	}
	nav := o.Navigator
	if nav == nil {
		dn, err := barrier.NewDirectionalNavigator(g, o.NavigatorOptions...)
		if err != nil {
			return nil, fmt.Errorf("NewPlanner: %w", err)
		}
		nav = dn
	}
	integrator, err := barrier.NewIntegrator(g, scorer, nav)
	if err != nil {
		return nil, fmt.Errorf("NewPlanner: %w", err)
	}

	return &Planner{
		g:          g,
		scorer:     scorer,
		integrator: integrator,
		opts:       o,
		log:        o.Logger.With(logging.Component("planner")),
	}, nil
}

// newScorer builds the scorer, chaining the candidate-count metric behind
// any user hook.
func newScorer(g *core.Graph, o Options) (*gateway.Scorer, error) {
	s, err := gateway.NewScorer(g, o.ScorerOptions...)
	if err != nil || o.Metrics == nil {
		return s, err
	}
	prev, m := s.Options().OnEvaluate, o.Metrics

	return gateway.NewScorer(g, append(o.ScorerOptions, gateway.WithOnEvaluate(func(n int) {
		if prev != nil {
			prev(n)
		}
		m.ObserveCandidates(n)
	}))...)
}

// Graph returns the graph the planner works on.
func (p *Planner) Graph() *core.Graph { return p.g }

// Scorer returns the gateway scorer shared by all calls.
func (p *Planner) Scorer() *gateway.Scorer { return p.scorer }

// PlanCoarseRoute returns the deduplicated coarse route from origin to
// destination for agent a. The sequence starts with origin and ends with
// destination.
func (p *Planner) PlanCoarseRoute(origin, destination core.NodeID, a agent.Properties, opts ...PlanOption) ([]core.NodeID, error) {
	res, err := p.Plan(origin, destination, a, opts...)
	if err != nil {
		return nil, err
	}

	return res.Sequence, nil
}

// Plan is PlanCoarseRoute with counters and intermediate sequences.
//
// Errors:
//   - core.ErrNodeNotFound (wrapped) for unknown origin or destination.
//   - ErrUnreachable when the reachability check is enabled and fails.
func (p *Planner) Plan(origin, destination core.NodeID, a agent.Properties, opts ...PlanOption) (*Result, error) {
	start := time.Now()
	mode := metrics.ModeRegions
	if a.BarrierBasedNavigation {
		mode = metrics.ModeBarriers
	}

	res, err := p.plan(origin, destination, a, opts)
	if err != nil {
		p.opts.Metrics.RecordPlan(mode, metrics.OutcomeError, time.Since(start))
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if res.Fallback {
		outcome = metrics.OutcomeFallback
		p.opts.Metrics.RecordFallback()
	}
	p.opts.Metrics.RecordPlan(mode, outcome, time.Since(start))
	p.opts.Metrics.RecordSubGoals(len(res.SubGoals))

	return res, nil
}

func (p *Planner) plan(origin, destination core.NodeID, a agent.Properties, opts []PlanOption) (*Result, error) {
	from, err := p.g.Node(origin)
	if err != nil {
		return nil, fmt.Errorf("Plan: origin: %w", err)
	}
	to, err := p.g.Node(destination)
	if err != nil {
		return nil, fmt.Errorf("Plan: destination: %w", err)
	}
	if p.opts.ReachabilityCheck {
		ok, err := bfs.Reachable(p.g, from.Region, to.Region)
		if err != nil {
			return nil, fmt.Errorf("Plan: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("Plan: region %d to %d: %w", from.Region, to.Region, ErrUnreachable)
		}
	}

	var cfg planConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newSequencer(p, from, to, cfg)
	s.run()
	res := s.res
	res.Raw = append([]core.NodeID(nil), s.seq...)

	seq := s.seq
	if a.BarrierBasedNavigation && !res.Fallback {
		in := p.integrator.Integrate(seq, barrier.NewTrip(origin, destination, a))
		seq, res.SubGoals = in.Sequence, in.SubGoals
	}
	res.Sequence = dedup(seq)

	return res, nil
}

// dedup keeps the first occurrence of every node.
func dedup(seq []core.NodeID) []core.NodeID {
	seen := make(map[core.NodeID]bool, len(seq))
	out := make([]core.NodeID, 0, len(seq))
	for _, n := range seq {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}

	return out
}
