// Package gauss relates a Gaussian beam's complex q-parameter to its
// geometry and transforms it through ABCD ray-transfer matrices.
//
// 🚀 What is the q-parameter?
//
//	A Gaussian beam at axial position z is fully described by one
//	complex number,
//
//	  q = (z - z₀) + i·z_R
//
//	where z - z₀ is the distance from the beam waist and z_R is the
//	Rayleigh range. An optical element with matrix [[A,B],[C,D]]
//	transforms it by the bilinear map
//
//	  q' = (A·q + B) / (C·q + D)
//
//	(Transform), or in the reciprocal/curvature-tracking form
//
//	  1/q' = (C + D/q) / (A + B/q)
//
//	(TransformReciprocal). The two branches are algebraically related
//	but numerically distinct near singularities; each is kept in its
//	exact form.
//
// ✨ Geometry relations (Saleh & Teich, Fundamentals of Photonics,
// eq. 3.1-11 and friends):
//   - RayleighRange — z_R from wavelength and waist radius
//   - WaistRadius   — waist radius from wavelength and Rayleigh range
//   - Waist, Radius, Curvature, Divergence — beam geometry read off a q
//
// ⚙️ Usage:
//
//	q := complex(0, gauss.RayleighRange(632.8e-9, 1e-3, gauss.Vacuum))
//	q = gauss.Transform(q, abcd.Propagation(0.5))
//	q = gauss.Transform(q, abcd.ThinLens(0.1))
//
// All functions are pure and stateless: they read their arguments,
// allocate nothing shared, and are safe to call from any goroutine.
// Failures surface as IEEE-754 values (±Inf from division by zero, NaN
// from the square root of a negative number), never as errors or panics.
package gauss
