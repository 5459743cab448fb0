// Package simulation drives batches of pedestrian trips through a planner.
//
// RandomTrips draws origin/destination pairs: origins among non-gateway
// nodes, destinations at a straight-line distance inside [min, max] from
// the origin. Agents cycle through the requested route-choice codes.
//
// A Runner plans a batch concurrently with a bounded errgroup, keeps the
// results in trip order, skips trips whose destination region cannot be
// reached, and optionally hands the routes to a RouteSaver. Each run gets a
// fresh uuid.
package simulation
