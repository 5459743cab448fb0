// File: integrator.go
// Role: Walk a gateway sequence and splice in barrier sub-goals.
// Determinism:
//   - The walk is sequential; Navigator and Scorer are deterministic.
// Concurrency:
//   - Integrator is immutable; all walk state is per call.

package barrier

import (
	"github.com/katalvlaran/pedroute/agent"
	"github.com/katalvlaran/pedroute/angles"
	"github.com/katalvlaran/pedroute/core"
	"github.com/katalvlaran/pedroute/gateway"
)

// Integrator inserts barrier sub-goals into gateway sequences.
type Integrator struct {
	g      *core.Graph
	scorer *gateway.Scorer
	nav    Navigator
}

// NewIntegrator returns an Integrator over g. A nil nav selects a
// DirectionalNavigator with default options.
//
// Errors:
//   - ErrGraphNil, ErrScorerNil.
func NewIntegrator(g *core.Graph, scorer *gateway.Scorer, nav Navigator) (*Integrator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if scorer == nil {
		return nil, ErrScorerNil
	}
	if nav == nil {
		dn, err := NewDirectionalNavigator(g)
		if err != nil {
			return nil, err
		}
		nav = dn
	}

	return &Integrator{g: g, scorer: scorer, nav: nav}, nil
}

// InsertSubGoals returns seq with barrier sub-goals inserted. seq is not
// modified.
func (in *Integrator) InsertSubGoals(seq []core.NodeID, origin, destination core.NodeID, a agent.Properties) []core.NodeID {
	return in.Integrate(seq, NewTrip(origin, destination, a)).Sequence
}

// Integrate walks seq for trip. Position 0 is the origin, odd positions are
// exits and even positions entries; only the origin and entries look for
// barriers. The sequence is walked over a mutable copy whose following hop
// is rewritten whenever a sub-goal takes over as its starting point.
//
// Complexity: O(L·(B + G)) for L sequence nodes, B region barriers and G
// region gateways.
func (in *Integrator) Integrate(seq []core.NodeID, trip *Trip) Integration {
	if trip.UsedBarriers == nil {
		trip.UsedBarriers = make(map[core.BarrierID]bool)
	}
	work := append([]core.NodeID(nil), seq...)
	lastEntry := len(seq) - 2
	ignore := make(map[core.NodeID]bool)
	res := Integration{Sequence: make([]core.NodeID, 0, len(seq)+2)}

	for i := 0; i < len(work); i++ {
		node := work[i]
		if ignore[node] {
			continue
		}
		res.Sequence = append(res.Sequence, node)
		if node == trip.Destination {
			break
		}
		if i%2 == 1 {
			continue
		}

		region := in.g.RegionOf(node)
		valid := in.nav.FindValidBarriers(trip, node, region)
		if len(valid) == 0 {
			continue
		}
		edgeID, barrierID, ok := in.nav.IdentifySubGoal(trip, node, valid, region)
		if !ok {
			continue
		}
		sub, ok := in.nearerEndpoint(edgeID, node)
		if !ok {
			continue
		}
		trip.UsedBarriers[barrierID] = true
		if contains(work, sub) {
			continue
		}
		res.Sequence = append(res.Sequence, sub)
		res.SubGoals = append(res.SubGoals, sub)
		if i >= lastEntry || i+2 >= len(work) {
			continue
		}

		in.replanHop(work, i, sub, trip.Destination, ignore)
	}

	return res
}

// replanHop rewrites work[i+1] and work[i+2] so that the hop after position i
// starts at sub.
func (in *Integrator) replanHop(work []core.NodeID, i int, sub, destination core.NodeID, ignore map[core.NodeID]bool) {
	target := in.g.RegionOf(work[i+2])
	subNode, err := in.g.Node(sub)
	if err != nil {
		return
	}

	if subNode.Gateway && subNode.HasAdjacentRegion(target) {
		if entry, ok := in.bestEntry(subNode, target, destination); ok {
			ignore[work[i+1]] = true
			work[i+2] = entry
		}
		return
	}

	key, ok := in.scorer.FindGateway(gateway.Query{
		Current:     sub,
		Region:      subNode.Region,
		Desired:     target,
		Destination: destination,
	})
	if ok {
		work[i+1], work[i+2] = key.Exit, key.Entry
	}
}

// bestEntry picks, among the entries of sub lying in target, the one whose
// bearing from sub deviates least from the bearing to destination.
func (in *Integrator) bestEntry(sub *core.Node, target core.RegionID, destination core.NodeID) (core.NodeID, bool) {
	toDest := in.g.Bearing(sub.ID, destination)
	best, bestDiff, found := core.NoNode, 0.0, false
	for _, entry := range sub.AdjacentRegionEntries {
		if in.g.RegionOf(entry) != target {
			continue
		}
		d := angles.Difference(in.g.Bearing(sub.ID, entry), toDest)
		if !found || d < bestDiff || (d == bestDiff && entry < best) {
			best, bestDiff, found = entry, d, true
		}
	}

	return best, found
}

// nearerEndpoint returns the endpoint of edge e closer to node; ties go to
// the From endpoint.
func (in *Integrator) nearerEndpoint(e core.EdgeID, node core.NodeID) (core.NodeID, bool) {
	edge, err := in.g.Edge(e)
	if err != nil {
		return core.NoNode, false
	}
	if in.g.Distance(node, edge.To) < in.g.Distance(node, edge.From) {
		return edge.To, true
	}

	return edge.From, true
}

func contains(seq []core.NodeID, id core.NodeID) bool {
	for _, n := range seq {
		if n == id {
			return true
		}
	}

	return false
}
