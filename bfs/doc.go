// Package bfs provides breadth-first search over the region adjacency graph
// of a pedroute core.Graph.
//
// What
//
//   - Regions are the vertices; two regions are adjacent when a gateway
//     leads from one into the other (core.Graph.RegionNeighbors).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from region → gateway hops from start
//   - Parent: map from region → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering via
//     WithFilterNeighbor, and a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Reachable(g, from, to) answers the connectivity question used by the
//     planner's precondition check and by the simulation driver.
//
// Determinism
//
//	RegionNeighbors is sorted ascending, so the visit sequence is fully
//	reproducible.
//
// Complexity (R = |Regions|, L = |region links|)
//
//   - Time:   O(R + L)
//   - Memory: O(R)
//
// Usage
//
//	res, err := bfs.BFS(g, 10, bfs.WithMaxDepth(2))
//	ok, err := bfs.Reachable(g, 10, 30)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartRegionNotFound  if the start region does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
