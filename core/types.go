// Package core defines the city graph model consumed by the planners:
// nodes, edges, regions, gateways and barriers, addressed by integer IDs.
//
// This file declares the identifier types, the value types, GatewayKey and
// the sentinel errors.
//
// Errors:
//
//	ErrNodeNotFound     - requested node does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrRegionNotFound   - requested region does not exist.
//	ErrBarrierNotFound  - requested barrier does not exist.
//	ErrNoRegion         - a node was added without a region.
//	ErrDuplicateID      - an ID was added twice.
//	ErrLoopNotAllowed   - an edge joins a node to itself.
//	ErrBadGeometry      - a barrier has fewer than two coordinates.
//	ErrInvalidGateway   - a derived gateway would violate the region invariants.
package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("core: region not found")

	// ErrBarrierNotFound indicates an operation referenced a non-existent barrier.
	ErrBarrierNotFound = errors.New("core: barrier not found")

	// ErrNoRegion indicates a node without an assigned region.
	ErrNoRegion = errors.New("core: node has no region")

	// ErrDuplicateID indicates a node, edge or barrier ID was added twice.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrLoopNotAllowed indicates a self-loop edge.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadGeometry indicates a barrier geometry with fewer than two points.
	ErrBadGeometry = errors.New("core: barrier geometry needs at least two points")

	// ErrInvalidGateway indicates a gateway whose target region equals the
	// region of its exit node, or a duplicate (exit, entry) pair in a region.
	ErrInvalidGateway = errors.New("core: invalid gateway")
)

// NodeID identifies a street junction.
type NodeID int

// EdgeID identifies a street segment.
type EdgeID int

// RegionID identifies a region (a partition of the street graph).
type RegionID int

// BarrierID identifies a barrier (river, rail line, park, ...).
type BarrierID int

const (
	// NoRegion marks a node whose region has not been assigned.
	NoRegion RegionID = -1

	// CrossRegion is the region of an edge whose endpoints lie in different regions.
	CrossRegion RegionID = -2

	// NoNode marks an absent node reference, e.g. an edge without dual node.
	NoNode NodeID = -1
)

// Node is a street junction with its region annotations.
//
// AdjacentRegions and AdjacentRegionEntries are populated only for gateway
// nodes; both are sorted ascending.
type Node struct {
	ID     NodeID
	Coord  orb.Point
	Region RegionID

	// Gateway reports whether at least one boundary-crossing edge starts here.
	Gateway bool

	// AdjacentRegions lists the regions one gateway hop away from this node.
	AdjacentRegions []RegionID

	// AdjacentRegionEntries lists the entry nodes, in neighbouring regions,
	// directly reachable from this node.
	AdjacentRegionEntries []NodeID
}

// HasAdjacentRegion reports whether r is one gateway hop away from n.
func (n *Node) HasAdjacentRegion(r RegionID) bool {
	for _, ar := range n.AdjacentRegions {
		if ar == r {
			return true
		}
	}

	return false
}

// Edge is an undirected street segment.
type Edge struct {
	ID     EdgeID
	From   NodeID
	To     NodeID
	Length float64

	// Region is the owning region, or CrossRegion for boundary-crossing edges.
	Region RegionID

	// Barriers lists the barriers running along this edge, sorted ascending.
	Barriers []BarrierID

	// DualNode references the node representing this edge in the dual graph.
	// It is carried for the local route-choice models and unused here.
	DualNode NodeID
}

// Opposite returns the endpoint of e that is not id.
func (e *Edge) Opposite(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GatewayKey is the identity of a gateway: its (exit, entry) node pair.
type GatewayKey struct {
	Exit  NodeID
	Entry NodeID
}

// Less orders keys by Exit, then Entry. It is the deterministic tie-break
// used wherever two gateways score equally.
func (k GatewayKey) Less(o GatewayKey) bool {
	if k.Exit != o.Exit {
		return k.Exit < o.Exit
	}

	return k.Entry < o.Entry
}

// Gateway is a boundary-crossing edge seen from the region of its exit node.
type Gateway struct {
	Exit     NodeID
	Entry    NodeID
	Edge     EdgeID
	RegionTo RegionID

	// Distance is the straight-line distance from exit to entry.
	Distance float64

	// EntryAngle is the bearing from exit to entry, in degrees.
	EntryAngle float64
}

// Key returns the gateway identity.
func (gw Gateway) Key() GatewayKey {
	return GatewayKey{Exit: gw.Exit, Entry: gw.Entry}
}

// Region is a partition of the street graph.
type Region struct {
	ID RegionID

	// Edges lists the edges wholly inside the region, sorted ascending.
	Edges []EdgeID

	// Gateways lists the exits of the region, sorted by key.
	Gateways []Gateway

	// Barriers lists the barriers running along at least one region edge.
	Barriers []BarrierID
}

// Barrier is a linear or areal obstacle pedestrians align with.
type Barrier struct {
	ID       BarrierID
	Type     string
	Geometry orb.LineString

	// EdgesAlong lists the edges running alongside the barrier, sorted ascending.
	EdgesAlong []EdgeID
}

// Graph is the immutable city graph produced by Builder.Build.
//
// All fields are written once during Build and only read afterwards, so a
// *Graph is safe for concurrent use by any number of planners without locks.
// Values returned by pointer (Node, Edge, Region, Barrier, Gateway) are
// shared with the graph and must be treated as read-only.
type Graph struct {
	nodes    map[NodeID]*Node
	edges    map[EdgeID]*Edge
	regions  map[RegionID]*Region
	barriers map[BarrierID]*Barrier
	gateways map[GatewayKey]*Gateway

	// incident[n] lists the edges touching node n, sorted ascending.
	incident map[NodeID][]EdgeID

	// neighbors[r] lists the regions reachable from r through one gateway.
	neighbors map[RegionID][]RegionID

	// Sorted ID catalogs for deterministic iteration.
	nodeIDs    []NodeID
	edgeIDs    []EdgeID
	regionIDs  []RegionID
	barrierIDs []BarrierID
}
