// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// impl_districts.go - Districts(blockRows, blockCols) region partition.
//
// Contract:
//   • Splits the grid into rectangular districts of blockRows×blockCols cells
//     (the last row/column of districts may be smaller).
//   • Region id = (r / blockRows)·perRow + c / blockCols, perRow = ⌈cols/blockCols⌉.
//   • Streets joining two districts become cross-region edges, so every
//     district boundary yields gateways in both directions.

package builder

import (
	"github.com/katalvlaran/pedroute/core"
)

// Districts returns a Constructor that assigns each grid cell to a region.
func Districts(blockRows, blockCols int) Constructor {
	return func(l *layout, _ builderConfig) error {
		if err := validateGrid(MethodDistricts, l); err != nil {
			return err
		}
		if blockRows < 1 || blockCols < 1 {
			return builderErrorf(MethodDistricts, ErrBadSize,
				"block sizes must be ≥ 1, got %d×%d", blockRows, blockCols)
		}

		perRow := (l.cols + blockCols - 1) / blockCols
		for r := 0; r < l.rows; r++ {
			for c := 0; c < l.cols; c++ {
				l.regions[r*l.cols+c] = core.RegionID((r/blockRows)*perRow + c/blockCols)
			}
		}

		return nil
	}
}
