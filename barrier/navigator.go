// File: navigator.go
// Role: DirectionalNavigator, the default Navigator.
// Determinism:
//   - Candidates are ranked by (type rank, score, id); reference edges by
//     (distance of midpoint to destination, id).

package barrier

import (
	"math"
	"sort"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pedroute/angles"
	"github.com/katalvlaran/pedroute/core"
)

// DirectionalNavigator selects barriers lying between the walker and the
// destination.
type DirectionalNavigator struct {
	g    *core.Graph
	opts NavigatorOptions
	rank map[string]int
}

// NewDirectionalNavigator returns a navigator over g.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
func NewDirectionalNavigator(g *core.Graph, opts ...NavigatorOption) (*DirectionalNavigator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultNavigatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rank := make(map[string]int, len(o.PreferredTypes))
	for i, t := range o.PreferredTypes {
		if _, dup := rank[t]; !dup {
			rank[t] = i
		}
	}

	return &DirectionalNavigator{g: g, opts: o, rank: rank}, nil
}

// FindValidBarriers returns the unused barriers of region that are no
// farther from node than the destination is and whose nearest along-edge
// midpoint lies within the cone around the bearing to the destination.
// The score is the planar distance from node to the barrier geometry.
func (n *DirectionalNavigator) FindValidBarriers(trip *Trip, node core.NodeID, region core.RegionID) map[core.BarrierID]float64 {
	view, err := n.g.RegionView(region)
	if err != nil {
		return nil
	}
	from, err := n.g.Node(node)
	if err != nil {
		return nil
	}
	dest, err := n.g.Node(trip.Destination)
	if err != nil {
		return nil
	}
	limit := angles.Distance(from.Coord, dest.Coord)
	toDest := angles.Bearing(from.Coord, dest.Coord)
	half := n.opts.Cone / 2

	out := make(map[core.BarrierID]float64)
	for _, bid := range view.Barriers() {
		if trip.UsedBarriers[bid] {
			continue
		}
		bar, err := n.g.Barrier(bid)
		if err != nil {
			continue
		}
		d := planar.DistanceFrom(bar.Geometry, from.Coord)
		if d > limit {
			continue
		}
		along := view.EdgesAlong(bid)
		if len(along) == 0 {
			continue
		}
		nearest, nearestDist := along[0], math.Inf(1)
		for _, eid := range along {
			if dd := angles.Distance(from.Coord, n.g.Midpoint(eid)); dd < nearestDist {
				nearest, nearestDist = eid, dd
			}
		}
		if !angles.IsWithinTolerance(toDest, angles.Bearing(from.Coord, n.g.Midpoint(nearest)), half) {
			continue
		}
		out[bid] = d
	}

	return out
}

// IdentifySubGoal ranks valid barriers by preferred type, then score, then
// id, and returns the first one with an along-edge in region. The reference
// edge is the along-edge whose midpoint is closest to the destination.
func (n *DirectionalNavigator) IdentifySubGoal(trip *Trip, _ core.NodeID, valid map[core.BarrierID]float64, region core.RegionID) (core.EdgeID, core.BarrierID, bool) {
	view, err := n.g.RegionView(region)
	if err != nil {
		return 0, 0, false
	}
	dest, err := n.g.Node(trip.Destination)
	if err != nil {
		return 0, 0, false
	}

	for _, bid := range n.ranked(valid) {
		along := view.EdgesAlong(bid)
		if len(along) == 0 {
			continue
		}
		best, bestDist := along[0], math.Inf(1)
		for _, eid := range along {
			if d := angles.Distance(n.g.Midpoint(eid), dest.Coord); d < bestDist {
				best, bestDist = eid, d
			}
		}

		return best, bid, true
	}

	return 0, 0, false
}

// ranked orders valid barrier ids by (type rank, score, id).
func (n *DirectionalNavigator) ranked(valid map[core.BarrierID]float64) []core.BarrierID {
	type entry struct {
		id    core.BarrierID
		rank  int
		score float64
	}
	entries := make([]entry, 0, len(valid))
	for bid, score := range valid {
		r := len(n.rank)
		if bar, err := n.g.Barrier(bid); err == nil {
			if pr, ok := n.rank[bar.Type]; ok {
				r = pr
			}
		}
		entries = append(entries, entry{id: bid, rank: r, score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.score != b.score {
			return a.score < b.score
		}
		return a.id < b.id
	})

	ids := make([]core.BarrierID, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}

	return ids
}
