// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Builder, the only way to construct a Graph.
// Policy:
//   - Builder accumulates raw nodes, edges and barriers; it performs local
//     validation eagerly (duplicate IDs, self-loops, missing regions) and the
//     cross-element validation in Build.
//   - Build derives every annotation the planners read (edge regions, region
//     edge lists, gateways, adjacent regions, barrier edges) and freezes the
//     result. A Builder must not be reused after Build.
// AI-HINT (file):
//   - Add nodes before the edges that reference them; edge endpoints are checked in Build.
//   - Edge length defaults to the euclidean distance between its endpoints.

package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pedroute/angles"
)

// EdgeOption configures an edge when it is added to a Builder.
type EdgeOption func(*Edge)

// WithBarriers marks the barriers running along the edge.
func WithBarriers(ids ...BarrierID) EdgeOption {
	return func(e *Edge) {
		e.Barriers = append(e.Barriers, ids...)
	}
}

// WithDualNode records the dual-graph node representing the edge.
func WithDualNode(id NodeID) EdgeOption {
	return func(e *Edge) { e.DualNode = id }
}

// WithLength overrides the euclidean length of the edge. Non-positive
// values are ignored.
func WithLength(length float64) EdgeOption {
	return func(e *Edge) {
		if length > 0 {
			e.Length = length
		}
	}
}

// Builder collects the elements of a city graph.
type Builder struct {
	nodes    map[NodeID]*Node
	edges    map[EdgeID]*Edge
	barriers map[BarrierID]*Barrier
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes:    make(map[NodeID]*Node),
		edges:    make(map[EdgeID]*Edge),
		barriers: make(map[BarrierID]*Barrier),
	}
}

// AddNode registers a junction at coord inside region.
//
// Errors:
//   - ErrNoRegion if region is negative.
//   - ErrDuplicateID if id was already added.
//
// Complexity: O(1).
func (b *Builder) AddNode(id NodeID, coord orb.Point, region RegionID) error {
	if region < 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrNoRegion)
	}
	if _, ok := b.nodes[id]; ok {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateID)
	}
	b.nodes[id] = &Node{ID: id, Coord: coord, Region: region}

	return nil
}

// AddEdge registers an undirected street segment between from and to.
//
// Errors:
//   - ErrLoopNotAllowed if from == to.
//   - ErrDuplicateID if id was already added.
//
// Complexity: O(1) plus the cost of opts.
func (b *Builder) AddEdge(id EdgeID, from, to NodeID, opts ...EdgeOption) error {
	if from == to {
		return fmt.Errorf("AddEdge(%d): %d→%d: %w", id, from, to, ErrLoopNotAllowed)
	}
	if _, ok := b.edges[id]; ok {
		return fmt.Errorf("AddEdge(%d): %w", id, ErrDuplicateID)
	}
	e := &Edge{ID: id, From: from, To: to, DualNode: NoNode}
	for _, opt := range opts {
		opt(e)
	}
	b.edges[id] = e

	return nil
}

// AddBarrier registers a barrier with its type tag and geometry.
//
// Errors:
//   - ErrBadGeometry if geometry has fewer than two points.
//   - ErrDuplicateID if id was already added.
func (b *Builder) AddBarrier(id BarrierID, kind string, geometry orb.LineString) error {
	if len(geometry) < 2 {
		return fmt.Errorf("AddBarrier(%d): %w", id, ErrBadGeometry)
	}
	if _, ok := b.barriers[id]; ok {
		return fmt.Errorf("AddBarrier(%d): %w", id, ErrDuplicateID)
	}
	b.barriers[id] = &Barrier{ID: id, Type: kind, Geometry: geometry.Clone()}

	return nil
}

// Build validates the collected elements and returns the frozen Graph.
//
// Implementation:
//   - Stage 1: Validate edge endpoints and barrier references.
//   - Stage 2: Assign edge lengths and regions; collect region edge lists.
//   - Stage 3: Derive gateways from cross-region edges (see methods_adjacent.go).
//   - Stage 4: Link barriers to the edges along them and to their regions.
//   - Stage 5: Sort every catalog for deterministic iteration.
//
// Errors:
//   - ErrNodeNotFound if an edge references an unknown node.
//   - ErrBarrierNotFound if an edge references an unknown barrier.
//   - ErrInvalidGateway if gateway invariants cannot hold.
//
// Complexity: O(V log V + E log E + B·E_b).
func (b *Builder) Build() (*Graph, error) {
	g := &Graph{
		nodes:     b.nodes,
		edges:     b.edges,
		regions:   make(map[RegionID]*Region),
		barriers:  b.barriers,
		gateways:  make(map[GatewayKey]*Gateway),
		incident:  make(map[NodeID][]EdgeID, len(b.nodes)),
		neighbors: make(map[RegionID][]RegionID),
	}

	// Stage 1 + 2: endpoints, barrier references, lengths, regions.
	for id, n := range g.nodes {
		g.nodeIDs = append(g.nodeIDs, id)
		if _, ok := g.regions[n.Region]; !ok {
			g.regions[n.Region] = &Region{ID: n.Region}
			g.regionIDs = append(g.regionIDs, n.Region)
		}
	}
	for id, e := range g.edges {
		u, okU := g.nodes[e.From]
		v, okV := g.nodes[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("Build: edge %d (%d→%d): %w", id, e.From, e.To, ErrNodeNotFound)
		}
		for _, bid := range e.Barriers {
			if _, ok := g.barriers[bid]; !ok {
				return nil, fmt.Errorf("Build: edge %d barrier %d: %w", id, bid, ErrBarrierNotFound)
			}
		}
		e.Barriers = uniqueBarrierIDs(e.Barriers)
		if e.Length == 0 {
			e.Length = angles.Distance(u.Coord, v.Coord)
		}
		if u.Region == v.Region {
			e.Region = u.Region
			r := g.regions[u.Region]
			r.Edges = append(r.Edges, id)
		} else {
			e.Region = CrossRegion
		}
		g.edgeIDs = append(g.edgeIDs, id)
		g.incident[e.From] = append(g.incident[e.From], id)
		g.incident[e.To] = append(g.incident[e.To], id)
	}
	for id := range g.barriers {
		g.barrierIDs = append(g.barrierIDs, id)
	}

	sort.Slice(g.nodeIDs, func(i, j int) bool { return g.nodeIDs[i] < g.nodeIDs[j] })
	sort.Slice(g.edgeIDs, func(i, j int) bool { return g.edgeIDs[i] < g.edgeIDs[j] })
	sort.Slice(g.regionIDs, func(i, j int) bool { return g.regionIDs[i] < g.regionIDs[j] })
	sort.Slice(g.barrierIDs, func(i, j int) bool { return g.barrierIDs[i] < g.barrierIDs[j] })
	for _, ids := range g.incident {
		sortEdgeIDs(ids)
	}

	// Stage 3: gateways and node annotations.
	if err := g.deriveGateways(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// Stage 4: barriers.
	g.linkBarriers()

	// Stage 5: region catalogs.
	for _, r := range g.regions {
		sortEdgeIDs(r.Edges)
	}

	return g, nil
}

// sortEdgeIDs sorts ids ascending in place.
func sortEdgeIDs(ids []EdgeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// uniqueBarrierIDs returns ids sorted ascending without duplicates.
func uniqueBarrierIDs(ids []BarrierID) []BarrierID {
	if len(ids) == 0 {
		return nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}

	return out
}
