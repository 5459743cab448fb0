// Package core provides the immutable, in-memory city graph that the
// region-based planners consume.
//
// The model is an arena addressed by integer IDs. Nodes, edges, regions,
// gateways and barriers refer to each other by ID only; there are no mutual
// object references and no process-wide lookup tables. A Graph is built once
// with a Builder and is read-only afterwards, so any number of concurrent
// planning invocations can share it without locking.
//
// Elements:
//
//   - Node     – junction with coordinate (orb.Point) and owning region;
//     gateway nodes also carry AdjacentRegions and AdjacentRegionEntries.
//   - Edge     – undirected segment; Region is CrossRegion when the endpoints
//     lie in different regions; Barriers lists barriers running alongside.
//   - Region   – edges wholly inside it, its exit Gateways, its Barriers.
//   - Gateway  – (exit, entry) pair over one cross-region edge, with the
//     target region, crossing distance and the bearing exit→entry.
//   - Barrier  – typed line geometry with the edges running along it.
//
// Building:
//
//	b := core.NewBuilder()
//	_ = b.AddNode(1, orb.Point{0, 0}, 10)
//	_ = b.AddNode(2, orb.Point{50, 0}, 20)
//	_ = b.AddEdge(100, 1, 2)
//	g, err := b.Build()
//
// Build derives edge lengths and regions, every gateway (one per direction of
// a cross-region edge), node gateway annotations, region neighbours and the
// barrier/edge links.
//
// Invariants guaranteed by Build:
//
//   - every node belongs to exactly one region;
//   - a gateway's RegionTo differs from the region of its exit node;
//   - a region lists each (exit, entry) pair at most once;
//   - every catalog iterates in ascending ID order.
//
// Errors:
//
//	ErrNodeNotFound      – unknown node (lookup or edge endpoint)
//	ErrEdgeNotFound      – unknown edge
//	ErrRegionNotFound    – unknown region
//	ErrBarrierNotFound   – unknown barrier (lookup or edge mark)
//	ErrNoRegion          – node added without a region
//	ErrDuplicateID       – ID added twice
//	ErrLoopNotAllowed    – edge from a node to itself
//	ErrBadGeometry       – barrier with fewer than two points
//	ErrInvalidGateway    – gateway invariant violated
package core
