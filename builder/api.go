// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCity(bopts, cons...). Resolves cfg, runs cons in
//     order over a staging layout, then freezes the layout with core.Builder.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Grid must come first; Districts, River and Park decorate the grid.
//   - Use WithSeed + WithJitter to get irregular but reproducible coordinates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pedroute/core"
)

// Constructor applies a deterministic mutation to the staging layout.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(l *layout, cfg builderConfig) error

// BuildCity resolves the builder configuration from bopts, applies all
// constructors in order and builds the resulting core.Graph.
//
// Errors:
//   - Wraps constructor errors via %w (ErrTooFewVertices, ErrBadSize, ...).
//   - Wraps core.Builder errors raised while freezing the layout.
func BuildCity(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	l := &layout{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCity: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("BuildCity: %w", err)
		}
	}
	if l.rows == 0 {
		return nil, fmt.Errorf("BuildCity: no Grid constructor: %w", ErrConstructFailed)
	}

	g, err := l.freeze()
	if err != nil {
		return nil, fmt.Errorf("BuildCity: %w", err)
	}

	return g, nil
}

// NodeAt returns the node id of grid cell (row, col) for a grid with cols
// columns. It is the fixed id scheme used by Grid.
func NodeAt(row, col, cols int) core.NodeID {
	return core.NodeID(row*cols + col)
}
