// File: scorer.go
// Role: Gateway candidate evaluation and deterministic selection.
// Determinism:
//   - Candidates are evaluated into a slice indexed like Region.Gateways.
//   - The reduction scans that slice in order; ties go to the lower GatewayKey.
// Concurrency:
//   - A Scorer is immutable after NewScorer and safe for concurrent use.
//   - Parallel evaluation writes disjoint slice elements only.

package gateway

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pedroute/angles"
	"github.com/katalvlaran/pedroute/core"
)

// Scorer picks gateways over one immutable graph.
type Scorer struct {
	g    *core.Graph
	opts Options
}

// NewScorer returns a Scorer over g.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrOptionViolation if any option was invalid.
func NewScorer(g *core.Graph, opts ...Option) (*Scorer, error) {
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

	return &Scorer{g: g, opts: o}, nil
}

// Options returns the resolved options.
func (s *Scorer) Options() Options { return s.opts }

// FindGateway returns the best gateway pair for q, or false when none is
// usable. A false result is a control-flow signal, not an error.
//
// Complexity: O(G) for G gateways of q.Region.
func (s *Scorer) FindGateway(q Query) (core.GatewayKey, bool) {
	cands := s.Evaluate(q)

	var bestValid, bestFallback *Candidate
	for i := range cands {
		c := &cands[i]
		switch c.Class {
		case Valid:
			if better(c, bestValid) {
				bestValid = c
			}
		case Fallback:
			if better(c, bestFallback) {
				bestFallback = c
			}
		}
	}

	switch {
	case bestValid != nil:
		return bestValid.Gateway.Key(), true
	case q.Desired != AnyRegion:
		// A specific region was required; a fallback must not stand in for it.
		return core.GatewayKey{}, false
	case bestFallback != nil:
		return bestFallback.Gateway.Key(), true
	default:
		return core.GatewayKey{}, false
	}
}

// better reports whether c beats the current best.
func better(c, best *Candidate) bool {
	if best == nil || c.Cost < best.Cost {
		return true
	}

	return c.Cost == best.Cost && c.Gateway.Key().Less(best.Gateway.Key())
}

// Evaluate classifies every gateway of q.Region that survives the query
// filters, in Region.Gateways order. Unknown nodes or regions yield nil.
func (s *Scorer) Evaluate(q Query) []Candidate {
	region, err := s.g.Region(q.Region)
	if err != nil {
		return nil
	}
	cur, err := s.g.Node(q.Current)
	if err != nil {
		return nil
	}
	dst, err := s.g.Node(q.Destination)
	if err != nil {
		return nil
	}

	pool := make([]core.Gateway, 0, len(region.Gateways))
	for _, gw := range region.Gateways {
		switch {
		case q.BadExits[gw.Key()]:
		case q.Desired != AnyRegion && q.Desired != gw.RegionTo:
		case q.Visited[gw.RegionTo]:
		default:
			pool = append(pool, gw)
		}
	}
	if s.opts.OnEvaluate != nil {
		s.opts.OnEvaluate(len(pool))
	}
	if len(pool) == 0 {
		return nil
	}

	e := evaluator{
		g:         s.g,
		opts:      s.opts,
		current:   cur,
		destAngle: angles.Bearing(cur.Coord, dst.Coord),
		destDist:  angles.Distance(cur.Coord, dst.Coord),
		dest:      dst,
	}
	out := make([]Candidate, len(pool))

	if s.opts.Workers > 1 && len(pool) >= s.opts.ParallelThreshold {
		var eg errgroup.Group
		eg.SetLimit(s.opts.Workers)
		for i := range pool {
			i := i
			eg.Go(func() error {
				out[i] = e.classify(pool[i])
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for i := range pool {
			out[i] = e.classify(pool[i])
		}
	}

	return out
}

// evaluator carries the per-call values shared by all candidates.
type evaluator struct {
	g         *core.Graph
	opts      Options
	current   *core.Node
	dest      *core.Node
	destAngle float64
	destDist  float64
}

func (e evaluator) classify(gw core.Gateway) Candidate {
	exit, err := e.g.Node(gw.Exit)
	if err != nil {
		return Candidate{Gateway: gw, Class: Dropped}
	}

	locationExitAngle := angles.Bearing(e.current.Coord, exit.Coord)
	exitDestinationAngle := angles.Bearing(exit.Coord, e.dest.Coord)
	distanceFromGate := angles.Distance(e.current.Coord, exit.Coord)
	differenceExitEntry := angles.Difference(locationExitAngle, exitDestinationAngle)

	c := Candidate{
		Gateway:          gw,
		IsCurrentExit:    gw.Exit == e.current.ID,
		EntryInDirection: angles.IsWithinTolerance(e.destAngle, gw.EntryAngle, e.opts.DirectionTolerance),
		ExitInDirection:  angles.IsWithinTolerance(e.destAngle, locationExitAngle, e.opts.DirectionTolerance),
	}
	notInDirection := distanceFromGate > e.destDist || !c.ExitInDirection || !c.EntryInDirection
	entryCost := angles.Difference(gw.EntryAngle, e.destAngle)
	walkCost := angles.Difference(locationExitAngle, e.destAngle)

	switch {
	case c.IsCurrentExit && !c.EntryInDirection:
		c.Class, c.Cost = Fallback, entryCost
	case !c.IsCurrentExit && notInDirection:
		if walkCost <= e.opts.FallbackCone {
			c.Class, c.Cost = Fallback, walkCost+differenceExitEntry
		} else {
			c.Class = Dropped
		}
	case c.IsCurrentExit:
		c.Class, c.Cost = Valid, entryCost
	default:
		c.Class, c.Cost = Valid, walkCost+differenceExitEntry
	}

	return c
}
