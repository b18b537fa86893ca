package abcd

import "gonum.org/v1/gonum/mat"

// raySide is the dimension of every ray-transfer matrix: a paraxial ray
// is the (position, angle) pair, so all element matrices are 2×2.
const raySide = 2

// newRayMatrix allocates a fresh 2×2 Dense from row-major entries
// [[a, b], [c, d]]. All constructors funnel through here so that every
// returned matrix is independently owned by the caller.
func newRayMatrix(a, b, c, d float64) *mat.Dense {
	return mat.NewDense(raySide, raySide, []float64{a, b, c, d})
}

// ThinLens returns the ray-transfer matrix of an ideal thin lens,
//
//	[[ 1,    0 ],
//	 [ -1/f, 1 ]]
//
// Inputs:
//   - f: focal length; f > 0 for a convex/positive (converging) lens.
//
// Valid only in the thin-lens (paraxial) approximation, i.e. when the
// focal length is much greater than the thickness of the lens.
// f == 0 yields a -Inf/+Inf C entry per IEEE-754 division; no error is
// returned and no panic is raised.
//
// Complexity: O(1), one 2×2 allocation.
func ThinLens(f float64) *mat.Dense {
	return newRayMatrix(
		1, 0,
		-1/f, 1,
	)
}

// ThickLens returns the ray-transfer matrix of a thick lens: refraction
// at the entry surface, translation through the glass, refraction at the
// exit surface.
//
// Inputs:
//   - n1: refractive index outside the lens.
//   - n2: refractive index of the lens itself.
//   - r1: radius of curvature of the first (entry) surface.
//   - r2: radius of curvature of the second (exit) surface.
//   - t:  center thickness of the lens.
//
// The three factors multiply in propagation order. The surface hit first
// is the rightmost factor, so in matrix notation
//
//	M = M_exit · M_slab(t) · M_entry
//
// with
//
//	M_entry = [[1, 0], [(n1-n2)/(r1·n2), n1/n2]]
//	M_slab  = [[1, t], [0, 1]]
//	M_exit  = [[1, 0], [(n2-n1)/(r2·n1), n2/n1]]
//
// A zero radius or zero outside index flows through as ±Inf/NaN entries.
//
// Complexity: O(1); two fixed-size matrix products.
func ThickLens(n1, n2, r1, r2, t float64) *mat.Dense {
	entry := newRayMatrix(
		1, 0,
		(n1-n2)/(r1*n2), n1/n2,
	)
	slab := newRayMatrix(
		1, t,
		0, 1,
	)
	exit := newRayMatrix(
		1, 0,
		(n2-n1)/(r2*n1), n2/n1,
	)

	// Compose right-to-left: slab·entry first, then exit·(slab·entry).
	mid := mat.NewDense(raySide, raySide, nil)
	mid.Mul(slab, entry)
	m := mat.NewDense(raySide, raySide, nil)
	m.Mul(exit, mid)
	return m
}

// Propagation returns the ray-transfer matrix of propagation over
// distance d through free space or a medium of constant refractive index,
//
//	[[ 1, d ],
//	 [ 0, 1 ]]
//
// Propagation(0) is the identity.
//
// Complexity: O(1), one 2×2 allocation.
func Propagation(d float64) *mat.Dense {
	return newRayMatrix(
		1, d,
		0, 1,
	)
}

// Mirror returns the ray-transfer matrix of reflection from a flat
// mirror at normal incidence: the 2×2 identity.
//
// Complexity: O(1), one 2×2 allocation.
func Mirror() *mat.Dense {
	return newRayMatrix(
		1, 0,
		0, 1,
	)
}

// FlatInterface returns the ray-transfer matrix of refraction at a flat
// boundary between media of refractive indices n1 and n2,
//
//	[[ 1, 0     ],
//	 [ 0, n1/n2 ]]
//
// Inputs:
//   - n1: initial (incident-side) refractive index.
//   - n2: final (transmitted-side) refractive index.
//
// FlatInterface(n, n) is the identity for any n.
//
// Complexity: O(1), one 2×2 allocation.
func FlatInterface(n1, n2 float64) *mat.Dense {
	return newRayMatrix(
		1, 0,
		0, n1/n2,
	)
}

// CurvedInterface returns the ray-transfer matrix of a curved
// mirror/boundary with effective radius of curvature re,
//
//	[[ 1,     0 ],
//	 [ -2/re, 1 ]]
//
// Sign convention: re > 0 for concave, valid in the paraxial
// approximation. For a mirror tilted by angle θ in the horizontal plane,
// the effective radius is R·cos(θ) in the tangential plane and R/cos(θ)
// in the sagittal plane, where R is the mirror's radius of curvature.
//
// Complexity: O(1), one 2×2 allocation.
func CurvedInterface(re float64) *mat.Dense {
	return newRayMatrix(
		1, 0,
		-2/re, 1,
	)
}
