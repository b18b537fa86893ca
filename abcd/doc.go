// Package abcd builds 2×2 ray-transfer (ABCD) matrices for common
// optical elements in the paraxial approximation.
//
// 🚀 What is an ABCD matrix?
//
//	A 2×2 matrix M = [[A,B],[C,D]] relating an optical ray's output
//	position/angle to its input position/angle:
//
//	  | y' |   | A  B |   | y |
//	  | θ' | = | C  D | · | θ |
//
//	Each constructor returns the matrix of one element:
//	  • ThinLens        — ideal thin converging/diverging lens
//	  • ThickLens       — two curved surfaces around a glass slab
//	  • Propagation     — free space (or uniform-index medium)
//	  • Mirror          — flat mirror at normal incidence
//	  • FlatInterface   — refraction at a flat boundary
//	  • CurvedInterface — curved mirror/boundary, effective radius Re
//
// ✨ Key properties:
//   - Every call allocates a fresh *mat.Dense; results are never shared.
//   - No validation, no errors: a zero focal length or radius yields
//     ±Inf entries per IEEE-754 division, for the caller to interpret.
//   - Compose elements with gonum's (*mat.Dense).Mul. Order matters:
//     the element traversed first is the rightmost factor.
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//	  "github.com/katalvlaran/paraxial/abcd"
//	)
//
//	// 4f relay: propagate f, lens, propagate f.
//	var m mat.Dense
//	m.Mul(abcd.Propagation(f), abcd.ThinLens(f))
//	m.Mul(&m, abcd.Propagation(f))
//
// Complexity: every constructor is O(1) time and allocates one 2×2 Dense.
package abcd
