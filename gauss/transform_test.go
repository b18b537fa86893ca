package gauss_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/paraxial/abcd"
	"github.com/katalvlaran/paraxial/gauss"
)

// qTol bounds the rounding error accepted when comparing transformed
// q-parameters component-wise.
const qTol = 1e-12

// sampleQs are beam states used across transform tests: at the waist,
// before it, after it, with assorted Rayleigh ranges.
var sampleQs = []complex128{
	complex(0, 1),
	complex(0.5, 2),
	complex(-1.5, 0.3),
	complex(3, 4.9646),
}

// TestTransform_IdentityFixesQ verifies q' == q under the identity
// matrix (a flat mirror) for every sample beam.
func TestTransform_IdentityFixesQ(t *testing.T) {
	for _, q := range sampleQs {
		assert.Equal(t, q, gauss.Transform(q, abcd.Mirror()),
			"identity must fix q=%v", q)
	}
}

// TestTransform_PropagationShiftsQ verifies that free-space propagation
// adds the travelled distance to the real part of q and leaves the
// Rayleigh range untouched.
func TestTransform_PropagationShiftsQ(t *testing.T) {
	for _, q := range sampleQs {
		for _, d := range []float64{0.25, 1, -0.5} {
			got := gauss.Transform(q, abcd.Propagation(d))
			assert.Equal(t, complex(real(q)+d, imag(q)), got,
				"propagation by %v from q=%v", d, q)
		}
	}
}

// TestTransform_ThinLensKnownValue checks the direct branch against a
// hand-computed case: q = i through a unit-focal-length lens gives
// q' = i/(1-i) = -0.5 + 0.5i.
func TestTransform_ThinLensKnownValue(t *testing.T) {
	got := gauss.Transform(complex(0, 1), abcd.ThinLens(1))
	assert.InDelta(t, -0.5, real(got), qTol, "real part")
	assert.InDelta(t, 0.5, imag(got), qTol, "imaginary part")
}

// TestTransformReciprocal_IdentityGivesReciprocal verifies the branch
// formula on the identity: (C + D/q)/(A + B/q) reduces to 1/q, i.e. the
// reciprocal branch tracks 1/q', not q'.
func TestTransformReciprocal_IdentityGivesReciprocal(t *testing.T) {
	for _, q := range sampleQs {
		assert.Equal(t, 1/q, gauss.TransformReciprocal(q, abcd.Mirror()),
			"identity must map q=%v to 1/q", q)
	}
}

// TestTransformReciprocal_ThinLensKnownValue checks the reciprocal
// branch against a hand-computed case: q = i through a unit lens gives
// (-1 + 1/i)/1 = -1 - i.
func TestTransformReciprocal_ThinLensKnownValue(t *testing.T) {
	got := gauss.TransformReciprocal(complex(0, 1), abcd.ThinLens(1))
	assert.Equal(t, complex(-1, -1), got)
}

// TestTransformBranches_AgreeAwayFromSingularities verifies that, at
// regular points, the reciprocal branch coincides with the reciprocal
// of the direct branch. The two formulas are only tested for agreement
// here — each branch's own formula is pinned by the KnownValue tests
// above, because near a vanishing denominator they diverge numerically.
func TestTransformBranches_AgreeAwayFromSingularities(t *testing.T) {
	elements := []mat.Matrix{
		abcd.ThinLens(0.25),
		abcd.Propagation(1.5),
		abcd.CurvedInterface(2),
		abcd.ThickLens(1, 1.5, 50, -50, 5),
	}
	for _, q := range sampleQs {
		for _, m := range elements {
			direct := 1 / gauss.Transform(q, m)
			recip := gauss.TransformReciprocal(q, m)
			assert.InDelta(t, real(direct), real(recip), qTol, "real part, q=%v", q)
			assert.InDelta(t, imag(direct), imag(recip), qTol, "imag part, q=%v", q)
		}
	}
}

// TestTransform_ZeroDenominator verifies the IEEE pass-through contract:
// a vanishing C·q+D yields a non-finite q', not a panic or an error.
func TestTransform_ZeroDenominator(t *testing.T) {
	// ThinLens(1) has C=-1, D=1, so a (nonphysical) purely real q=1
	// zeroes the denominator.
	got := gauss.Transform(complex(1, 0), abcd.ThinLens(1))
	assert.True(t, cmplx.IsInf(got) || math.IsNaN(real(got)) || math.IsNaN(imag(got)),
		"zero denominator must flow through as Inf/NaN, got %v", got)
}
