package abcd

import "gonum.org/v1/gonum/mat"

// Coefficients unpacks the four entries of a ray-transfer matrix in the
// conventional [[A, B], [C, D]] order.
//
// The caller contract is a 2×2 matrix; no shape check is performed here.
// A smaller matrix panics inside gonum's bounds checking, matching the
// host semantics of indexing out of range. Extra rows/columns beyond 2×2
// are ignored.
//
// Complexity: O(1).
func Coefficients(m mat.Matrix) (a, b, c, d float64) {
	return m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1)
}
