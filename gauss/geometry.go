package gauss

import "math"

// Vacuum is the refractive index of free space. Pass it as n when the
// beam propagates in vacuum or, to good approximation, in air.
const Vacuum = 1.0

// RayleighRange returns the Rayleigh range z_R of a Gaussian beam,
//
//	z_R = n·π·w0² / wavelength
//
// as in eq. (3.1-11) of Saleh & Teich, Fundamentals of Photonics,
// generalized to a medium of refractive index n.
//
// Inputs:
//   - wavelength: vacuum wavelength of the beam.
//   - w0:         waist radius of the beam.
//   - n:          refractive index of the medium (Vacuum for free space).
//
// wavelength == 0 yields ±Inf per IEEE-754 division.
//
// Complexity: O(1).
func RayleighRange(wavelength, w0, n float64) float64 {
	return n * math.Pi * w0 * w0 / wavelength
}

// WaistRadius returns the waist radius w0 of a Gaussian beam from its
// Rayleigh range,
//
//	w0 = sqrt((wavelength/n)·z0 / π)
//
// the inverse of RayleighRange.
//
// Inputs:
//   - wavelength: vacuum wavelength of the beam.
//   - z0:         Rayleigh range of the beam.
//   - n:          refractive index of the medium (Vacuum for free space).
//
// When (wavelength/n)·z0 < 0 the result is NaN: this package keeps the
// real-valued backend convention of Go's math.Sqrt rather than promoting
// to a complex result.
//
// Complexity: O(1).
func WaistRadius(wavelength, z0, n float64) float64 {
	return math.Sqrt((wavelength / n) * z0 / math.Pi)
}

// Waist reads the waist radius off a q-parameter: the Rayleigh range is
// Im(q), converted via WaistRadius.
func Waist(q complex128, wavelength, n float64) float64 {
	return WaistRadius(wavelength, imag(q), n)
}

// Radius returns the beam radius w(z) at the plane described by q,
//
//	w(z) = w0 · sqrt(1 + ((z-z₀)/z_R)²)
//
// with z - z₀ = Re(q) and z_R = Im(q). At the waist (Re(q) == 0) this
// reduces to the waist radius.
func Radius(q complex128, wavelength, n float64) float64 {
	ratio := real(q) / imag(q)
	return Waist(q, wavelength, n) * math.Sqrt(1+ratio*ratio)
}

// Curvature returns the wavefront radius of curvature at the plane
// described by q,
//
//	R(z) = 1 / Re(1/q)
//
// At the beam waist 1/q is purely imaginary, so the result is ±Inf
// (a flat wavefront) per IEEE-754 division.
func Curvature(q complex128) float64 {
	return 1 / real(1/q)
}

// Divergence returns the far-field half-angle divergence of the beam,
//
//	θ = wavelength / (n·π·w0)
//
// valid in the paraxial approximation (θ small).
func Divergence(wavelength, w0, n float64) float64 {
	return wavelength / (n * math.Pi * w0)
}
