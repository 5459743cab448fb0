// Package pedroute plans coarse pedestrian routes through a city split into
// regions.
//
// A walker does not compute one global shortest path. It first picks a
// sequence of gateways (pairs of junctions where a street leaves one region
// and enters the next) that keeps it heading towards the destination, then
// optionally inserts barrier sub-goals (rivers, parks, rail lines) that it
// orients itself along inside each region.
//
// Layout:
//
//	core/       - immutable city graph: nodes, edges, regions, gateways, barriers
//	angles/     - planar bearings and angular differences
//	agent/      - route-choice codes (DS, AC, RDS, RAC, RBDS, RBAC)
//	gateway/    - gateway scoring and selection (sequential or worker pool)
//	barrier/    - barrier navigator and sub-goal integration
//	bfs/        - region-graph traversal and reachability
//	planner/    - region-to-region sequencer with backtracking
//	builder/    - synthetic districted grids with rivers and parks
//	scenario/   - YAML city and trip files
//	simulation/ - random trips and concurrent batch runs
//	store/      - SQLite route persistence
//	config/     - YAML configuration with validation
//	logging/    - structured JSON logging
//	metrics/    - Prometheus instrumentation
//	cmd/pedroute - command-line driver
//
// Quick example:
//
//	g, _ := builder.BuildCity(nil, builder.Grid(12, 12, 50), builder.Districts(4, 4), builder.River(6))
//	p, _ := planner.NewPlanner(g)
//	a, _ := agent.ParseRouteChoice("RBDS")
//	seq, _ := p.PlanCoarseRoute(builder.NodeAt(1, 1, 12), builder.NodeAt(10, 10, 12), a)
package pedroute
