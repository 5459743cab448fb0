// Package builder generates synthetic cities for tests, benchmarks and the
// command-line demo mode.
//
// A city is assembled by composing constructors over a staging layout and is
// frozen into an immutable core.Graph by BuildCity:
//
//	g, err := builder.BuildCity(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.2)},
//	    builder.Grid(12, 12, 50),   // 144 junctions, 50 m blocks
//	    builder.Districts(4, 4),    // 9 regions
//	    builder.River(5),           // water barrier along column 5
//	    builder.Park(8, 2, 9),      // park edge along row 8
//	)
//
// The package offers the following key components:
//
//   - Constructors: Grid, Districts, River, Park.
//   - Options: WithSeed, WithRand, WithJitter.
//   - The fixed id scheme NodeAt(row, col, cols) = row·cols + col.
//
// Guarantees:
//
//   - Deterministic output for equal constructors, order and seed.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping ErrTooFewVertices, ErrBadSize or
//     ErrConstructFailed with the constructor name.
package builder
