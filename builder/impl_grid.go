// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// impl_grid.go - implementation of Grid(rows, cols, spacing) constructor.
//
// Canonical model:
//   • 2D orthogonal street grid with 4-neighborhood (right & bottom per cell).
//   • Node IDs are row-major: NodeAt(r, c, cols) = r*cols + c.
//   • Cell (r, c) sits at (c·spacing, r·spacing), optionally jittered.
//   • Every node starts in region 0; Districts repartitions.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Bottom; edge IDs count from 0.
//   • Jitter draws two values per node in node order from cfg.rng.

package builder

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/pedroute/core"
)

// Grid returns a Constructor that lays out a rows×cols street grid.
func Grid(rows, cols int, spacing float64) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		if spacing <= 0 {
			return builderErrorf(MethodGrid, ErrBadSize, "spacing must be > 0, got %g", spacing)
		}
		if l.rows != 0 {
			return builderErrorf(MethodGrid, ErrConstructFailed, "grid already laid out")
		}

		l.rows, l.cols, l.spacing = rows, cols, spacing
		n := rows * cols
		l.coords = make([]orb.Point, n)
		l.regions = make([]core.RegionID, n)
		l.byPair = make(map[[2]core.NodeID]int, 2*n)

		jitter := cfg.rng != nil && cfg.jitter > 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pt := orb.Point{float64(c) * spacing, float64(r) * spacing}
				if jitter {
					pt[0] += (cfg.rng.Float64()*2 - 1) * cfg.jitter * spacing
					pt[1] += (cfg.rng.Float64()*2 - 1) * cfg.jitter * spacing
				}
				l.coords[r*cols+c] = pt
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := NodeAt(r, c, cols)
				if c+1 < cols {
					l.addEdge(u, NodeAt(r, c+1, cols))
				}
				if r+1 < rows {
					l.addEdge(u, NodeAt(r+1, c, cols))
				}
			}
		}

		return nil
	}
}
