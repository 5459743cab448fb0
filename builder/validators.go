// Package builder provides validation helpers to enforce
// parameter contracts in constructor factories.
package builder

// validateMin ensures that got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateGrid ensures a Grid constructor already ran.
func validateGrid(method string, l *layout) error {
	if l.rows == 0 {
		return builderErrorf(method, ErrConstructFailed, "Grid must run first")
	}

	return nil
}

// validateIndex ensures 0 ≤ i < n.
func validateIndex(method, name string, i, n int) error {
	if i < 0 || i >= n {
		return builderErrorf(method, ErrBadSize, "%s=%d outside [0,%d)", name, i, n)
	}

	return nil
}
