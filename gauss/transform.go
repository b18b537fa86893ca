package gauss

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/paraxial/abcd"
)

// Transform returns the q-parameter after the beam passes through the
// optical element with ray-transfer matrix m = [[A,B],[C,D]]:
//
//	q' = (A·q + B) / (C·q + D)
//
// Inputs:
//   - q: the beam's complex q-parameter, q = (z - z₀) + i·z_R.
//   - m: the element's 2×2 ray-transfer matrix (see package abcd).
//
// The caller contract is a 2×2 matrix with a nonzero denominator
// C·q + D; a zero denominator yields a complex infinity per Go's
// complex128 division, not an error. Shape is not validated: a smaller
// matrix panics in gonum's bounds checking.
//
// Complexity: O(1).
func Transform(q complex128, m mat.Matrix) complex128 {
	a, b, c, d := abcd.Coefficients(m)
	return (complex(a, 0)*q + complex(b, 0)) / (complex(c, 0)*q + complex(d, 0))
}

// TransformReciprocal returns the transformed q-parameter tracked in its
// reciprocal (curvature-based) form:
//
//	q' = (C + D/q) / (A + B/q)
//
// This is the bilinear transform applied to 1/q. It is algebraically
// related to Transform up to which side of the division is tracked, but
// the two branches behave differently near singularities (e.g. C·q+D→0
// versus A+B/q→0), so this exact formula is preserved rather than
// rewritten — 1/Transform(q, m) and TransformReciprocal(q, m) need not
// agree in general.
//
// Caller contract as in Transform, with the denominator A + B/q.
//
// Complexity: O(1).
func TransformReciprocal(q complex128, m mat.Matrix) complex128 {
	a, b, c, d := abcd.Coefficients(m)
	return (complex(c, 0) + complex(d, 0)/q) / (complex(a, 0) + complex(b, 0)/q)
}
