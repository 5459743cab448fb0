// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// impl_barriers.go - River(col) and Park(row, fromCol, toCol) barriers.
//
// Contract:
//   • Barrier IDs count from 0 in constructor order.
//   • River lays a "water" line a quarter spacing east of grid column col and
//     marks every street of that column as running along it.
//   • Park lays a "park" edge a quarter spacing south of grid row row between
//     fromCol and toCol and marks the streets of that stretch.

package builder

import (
	"github.com/paulmach/orb"
)

// River returns a Constructor adding a water barrier along grid column col.
func River(col int) Constructor {
	return func(l *layout, _ builderConfig) error {
		if err := validateGrid(MethodRiver, l); err != nil {
			return err
		}
		if err := validateIndex(MethodRiver, "col", col, l.cols); err != nil {
			return err
		}

		x := float64(col)*l.spacing + l.spacing/4
		id := l.addBarrier(BarrierWater, orb.LineString{
			{x, 0},
			{x, float64(l.rows-1) * l.spacing},
		})
		for r := 0; r+1 < l.rows; r++ {
			l.markAlong(NodeAt(r, col, l.cols), NodeAt(r+1, col, l.cols), id)
		}

		return nil
	}
}

// Park returns a Constructor adding a park barrier along grid row row,
// between columns fromCol and toCol (fromCol < toCol).
func Park(row, fromCol, toCol int) Constructor {
	return func(l *layout, _ builderConfig) error {
		if err := validateGrid(MethodPark, l); err != nil {
			return err
		}
		if err := validateIndex(MethodPark, "row", row, l.rows); err != nil {
			return err
		}
		if err := validateIndex(MethodPark, "toCol", toCol, l.cols); err != nil {
			return err
		}
		if fromCol < 0 || fromCol >= toCol {
			return builderErrorf(MethodPark, ErrBadSize, "need 0 ≤ fromCol < toCol, got %d..%d", fromCol, toCol)
		}

		y := float64(row)*l.spacing - l.spacing/4
		id := l.addBarrier(BarrierPark, orb.LineString{
			{float64(fromCol) * l.spacing, y},
			{float64(toCol) * l.spacing, y},
		})
		for c := fromCol; c < toCol; c++ {
			l.markAlong(NodeAt(row, c, l.cols), NodeAt(row, c+1, l.cols), id)
		}

		return nil
	}
}
