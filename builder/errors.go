// SPDX-License-Identifier: MIT
// Package: pedroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a grid dimension is below MinGridDim.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a non-positive spacing or block size, or a river/park
// position outside the grid.
var ErrBadSize = errors.New("builder: invalid size/position")

// ErrConstructFailed indicates constructors were composed incorrectly, e.g.
// Districts before Grid, or no Grid at all.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
