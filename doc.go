// Package paraxial is a small, dependency-light toolkit for paraxial
// (ABCD) matrix optics and Gaussian-beam propagation.
//
// 🚀 What is paraxial?
//
//	A collection of closed-form, stateless formula functions that build
//	2×2 ray-transfer matrices for common optical elements and relate a
//	Gaussian beam's complex q-parameter to its geometry:
//		• Elements: thin lens, thick lens, free-space propagation,
//		  flat mirror, flat interface, curved interface
//		• Beams: q-parameter transform (direct and reciprocal branch),
//		  Rayleigh range, waist radius, beam radius, wavefront curvature
//
// ✨ Why choose paraxial?
//
//   - Pure functions – no state, no I/O, safe from any goroutine
//   - Exact formulas – IEEE-754 semantics preserved end to end;
//     nonphysical inputs flow through as ±Inf/NaN, never panics or errors
//   - gonum-backed – matrices are plain *mat.Dense, composable with the
//     whole gonum/mat toolbox (Mul, Det, Formatted, ...)
//
// Everything is organized under two subpackages:
//
//	abcd/  — ray-transfer matrix constructors for optical elements
//	gauss/ — Gaussian-beam q-parameter transforms & geometry relations
//
// Quick ASCII example:
//
//	  ray ──▶ [entry] ──▶ [glass] ──▶ [exit] ──▶ ray'
//
//	  M = M_exit · M_slab · M_entry
//
// Matrices compose right-to-left along the optical path: the element hit
// first by the ray is the rightmost factor.
//
// See examples/ for runnable scenarios and each package's example_test.go
// for compilable snippets.
//
//	go get github.com/katalvlaran/paraxial
package paraxial
