// File: view.go
// Role: Non-mutating region views (the per-region sub-graph consulted by
// barrier navigation).
// Determinism:
//   - EdgesAlong returns edge IDs sorted ascending.
// Concurrency:
//   - A RegionView only reads the Graph; it is safe to share.
// AI-HINT (file):
//   - Views do NOT copy nodes or edges; they filter the Graph catalogs.

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// RegionView restricts a Graph to the edges wholly inside one region.
type RegionView struct {
	g      *Graph
	region *Region
	edges  map[EdgeID]struct{}
}

// RegionView returns the sub-graph view of region id.
//
// Errors:
//   - ErrRegionNotFound if id is unknown.
//
// Complexity: O(E_r) where E_r is the number of region edges.
func (g *Graph) RegionView(id RegionID) (*RegionView, error) {
	r, ok := g.regions[id]
	if !ok {
		return nil, fmt.Errorf("RegionView: region %d: %w", id, ErrRegionNotFound)
	}
	set := make(map[EdgeID]struct{}, len(r.Edges))
	for _, eid := range r.Edges {
		set[eid] = struct{}{}
	}

	return &RegionView{g: g, region: r, edges: set}, nil
}

// ID returns the region id.
func (v *RegionView) ID() RegionID { return v.region.ID }

// Graph returns the underlying graph.
func (v *RegionView) Graph() *Graph { return v.g }

// Contains reports whether edge e lies wholly inside the region.
func (v *RegionView) Contains(e EdgeID) bool {
	_, ok := v.edges[e]
	return ok
}

// Barriers returns the barriers running along region edges, sorted ascending.
func (v *RegionView) Barriers() []BarrierID {
	return append([]BarrierID(nil), v.region.Barriers...)
}

// EdgesAlong returns the region edges running along barrier b, sorted
// ascending. Unknown barriers yield nil.
func (v *RegionView) EdgesAlong(b BarrierID) []EdgeID {
	bar, ok := v.g.barriers[b]
	if !ok {
		return nil
	}
	var out []EdgeID
	for _, eid := range bar.EdgesAlong {
		if v.Contains(eid) {
			out = append(out, eid)
		}
	}

	return out
}

// Midpoint returns the midpoint of the straight segment joining the
// endpoints of edge e. Unknown edges yield the zero point.
func (g *Graph) Midpoint(e EdgeID) orb.Point {
	edge, ok := g.edges[e]
	if !ok {
		return orb.Point{}
	}
	u, v := g.nodes[edge.From].Coord, g.nodes[edge.To].Coord

	return orb.Point{(u[0] + v[0]) / 2, (u[1] + v[1]) / 2}
}
