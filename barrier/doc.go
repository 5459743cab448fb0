// Package barrier inserts barrier sub-goals into a coarse gateway sequence.
//
// Pedestrians orient along rivers, parks and similar barriers. After the
// gateway sequence is planned, the Integrator walks it and, at the origin and
// at every region entry, asks a Navigator for a barrier to follow inside the
// current region. The endpoint of the chosen reference edge nearest to the
// walker becomes a sub-goal and is inserted into the plan; when a following
// hop exists it is re-planned to start from the sub-goal.
//
// The Navigator is a collaborator interface. DirectionalNavigator is the
// default implementation: a barrier qualifies when it is no farther than the
// destination and lies roughly towards it, and water and park barriers are
// preferred over other kinds.
//
// Per-call state (used barriers, ignored nodes, the mutable copy of the
// sequence) lives in a Trip and local variables, so an Integrator is safe for
// concurrent use.
package barrier
