// Package planner sequences the regions and gateways a pedestrian passes
// through on the way from an origin to a destination node.
//
// A Planner owns an immutable core.Graph, a gateway.Scorer and a
// barrier.Integrator. Each PlanCoarseRoute call runs its own state machine
//
//	Planning ──success──▶ Planning (next region)
//	   │  └──target region reached──▶ Done
//	   ├──failure, previous hop known──▶ Backtracking ──▶ Planning
//	   └──failure, nothing to undo──▶ Fallback (…, destination)
//
// over call-local state: the sequence so far, the visited regions and the
// bad-exit set. Nothing is shared between calls, so one Planner serves any
// number of concurrent agents.
//
// Backtracking marks the last (exit, entry) pair as bad, drops it from the
// sequence and steps back one region. Bad pairs are never retried within
// the attempt and every region has finitely many gateways, so the machine
// terminates.
//
// When the agent navigates by barriers, the finished gateway sequence goes
// through the barrier integrator. The output is then deduplicated keeping
// the first occurrence of each node. A fallback skips barrier integration
// and is reported through Result.Fallback.
//
// Errors:
//
//	ErrGraphNil          – nil graph passed to NewPlanner
//	ErrOptionViolation   – invalid option
//	ErrUnreachable       – reachability check enabled and the destination
//	                       region cannot be reached from the origin region
//	core.ErrNodeNotFound – unknown origin or destination (wrapped)
package planner
