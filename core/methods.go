// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Nodes(), Edges(), Regions(), Barriers() return IDs sorted ascending.
//   - IncidentEdges() and RegionNeighbors() return IDs sorted ascending.
// Concurrency:
//   - The Graph is immutable; every method is safe for concurrent use.
//   - Returned slices are copies; returned pointers are shared and read-only.

package core

import (
	"fmt"

	"github.com/katalvlaran/pedroute/angles"
)

// Node returns the node with the given id.
//
// Errors:
//   - ErrNodeNotFound if id is unknown.
//
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Edge returns the edge with the given id.
//
// Errors:
//   - ErrEdgeNotFound if id is unknown.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("edge %d: %w", id, ErrEdgeNotFound)
	}

	return e, nil
}

// Region returns the region with the given id.
//
// Errors:
//   - ErrRegionNotFound if id is unknown.
func (g *Graph) Region(id RegionID) (*Region, error) {
	r, ok := g.regions[id]
	if !ok {
		return nil, fmt.Errorf("region %d: %w", id, ErrRegionNotFound)
	}

	return r, nil
}

// Barrier returns the barrier with the given id.
//
// Errors:
//   - ErrBarrierNotFound if id is unknown.
func (g *Graph) Barrier(id BarrierID) (*Barrier, error) {
	b, ok := g.barriers[id]
	if !ok {
		return nil, fmt.Errorf("barrier %d: %w", id, ErrBarrierNotFound)
	}

	return b, nil
}

// Gateway returns the gateway identified by key, if any.
func (g *Graph) Gateway(key GatewayKey) (*Gateway, bool) {
	gw, ok := g.gateways[key]
	return gw, ok
}

// RegionOf returns the region of node id, or NoRegion if id is unknown.
func (g *Graph) RegionOf(id NodeID) RegionID {
	n, ok := g.nodes[id]
	if !ok {
		return NoRegion
	}

	return n.Region
}

// Nodes returns all node IDs sorted ascending.
func (g *Graph) Nodes() []NodeID {
	return append([]NodeID(nil), g.nodeIDs...)
}

// Edges returns all edge IDs sorted ascending.
func (g *Graph) Edges() []EdgeID {
	return append([]EdgeID(nil), g.edgeIDs...)
}

// Regions returns all region IDs sorted ascending.
func (g *Graph) Regions() []RegionID {
	return append([]RegionID(nil), g.regionIDs...)
}

// Barriers returns all barrier IDs sorted ascending.
func (g *Graph) Barriers() []BarrierID {
	return append([]BarrierID(nil), g.barrierIDs...)
}

// IncidentEdges returns the edges touching node id, sorted ascending.
// Unknown nodes yield nil.
func (g *Graph) IncidentEdges(id NodeID) []EdgeID {
	return append([]EdgeID(nil), g.incident[id]...)
}

// RegionNeighbors returns the regions reachable from r through one gateway,
// sorted ascending. Unknown regions yield nil.
func (g *Graph) RegionNeighbors(r RegionID) []RegionID {
	return append([]RegionID(nil), g.neighbors[r]...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RegionCount returns the number of regions.
func (g *Graph) RegionCount() int { return len(g.regions) }

// GatewayCount returns the number of gateways across all regions.
func (g *Graph) GatewayCount() int { return len(g.gateways) }

// Bearing returns the bearing in degrees from node a to node b.
// Unknown nodes yield 0.
func (g *Graph) Bearing(a, b NodeID) float64 {
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return 0
	}

	return angles.Bearing(na.Coord, nb.Coord)
}

// Distance returns the euclidean distance between node a and node b.
// Unknown nodes yield 0.
func (g *Graph) Distance(a, b NodeID) float64 {
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return 0
	}

	return angles.Distance(na.Coord, nb.Coord)
}

// Stats summarises the size of a Graph.
type Stats struct {
	Nodes    int
	Edges    int
	Regions  int
	Gateways int
	Barriers int
}

// Stats returns a size snapshot of g.
func (g *Graph) Stats() Stats {
	return Stats{
		Nodes:    len(g.nodes),
		Edges:    len(g.edges),
		Regions:  len(g.regions),
		Gateways: len(g.gateways),
		Barriers: len(g.barriers),
	}
}
