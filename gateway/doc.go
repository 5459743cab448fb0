// Package gateway selects the next (exit, entry) gateway pair out of a region.
//
// A Scorer evaluates every gateway of the current region against the global
// destination and classifies it:
//
//   - Valid:    heading towards the destination; cost is the angular deviation
//     of the hop (plus the exit-to-destination turn when the agent must first
//     walk to the exit).
//   - Fallback: usable when nothing valid exists and no specific region was
//     requested; cost computed the same way.
//   - Dropped:  pointing too far away to be used at all.
//
// Candidates already excluded by the query (bad exits, visited regions, a
// different requested region) are never evaluated.
//
// Selection picks the minimum-cost valid candidate, else (only when the query
// accepts any region) the minimum-cost fallback. Equal costs are resolved by
// the lower core.GatewayKey, so the answer does not depend on evaluation order.
//
// Evaluation is embarrassingly parallel. With WithWorkers(n > 1) and at least
// ParallelThreshold candidates, candidates are classified concurrently into a
// preallocated slice and then reduced sequentially; the result is identical to
// the sequential one.
//
// Errors:
//
//	ErrGraphNil         – NewScorer received a nil graph
//	ErrOptionViolation  – an option was out of range
package gateway
