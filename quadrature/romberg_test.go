package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// int_0^2 x^2 e^-2x dx, antiderivative -(x^2/2 + x/2 + 1/4) e^-2x
func refBump() float64 {
	F := func(x float64) float64 {
		return -(0.5*x*x + 0.5*x + 0.25) * math.Exp(-2*x)
	}
	return F(2) - F(0)
}

func bump(x float64) float64 { return x * x * math.Exp(-2*x) }

func TestRichardsonRecoversSimpson(t *testing.T) {
	// Extrapolating an order-2 trapezoid pair is exactly Simpson
	var (
		f = func(x float64) float64 { return math.Cosh(x) }
	)
	Tn, err := Trapezoid(f, -1, 1, 4)
	require.NoError(t, err)
	T2n := Refine(f, -1, 1, Tn)
	S, err := Simpson(f, -1, 1, 4)
	require.NoError(t, err)
	assert.InDelta(t, S.Value, Richardson(Tn.Value, T2n.Value, 2), 1.e-14)
}

func TestAdaptiveTrapezoidTolerance(t *testing.T) {
	var (
		tol = 1.e-5
		ref = refBump()
	)
	R, err := AdaptiveTrapezoid(bump, 0, 2, tol)
	require.NoError(t, err)
	assert.LessOrEqual(t, R.Eta, tol)
	assert.InDelta(t, ref, R.Value, tol)
	// the raw estimate is strictly worse than the returned extrapolation
	assert.Less(t, math.Abs(R.Value-ref), math.Abs(R.Raw-ref))
	assert.Greater(t, R.Refinements, 0)
}

func TestAdaptiveTrapezoidRefinementCap(t *testing.T) {
	// Two refinements cannot reach 1e-12 on this integrand
	R, err := AdaptiveTrapezoid(bump, 0, 2, 1.e-12, 2)
	assert.ErrorIs(t, err, ErrToleranceNotReached)
	assert.Equal(t, 2, R.Refinements)
	assert.Greater(t, R.Eta, 1.e-12)
}

func TestAdaptiveTrapezoidInvalidInput(t *testing.T) {
	_, err := AdaptiveTrapezoid(bump, 2, 0, 1.e-5)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	_, err = AdaptiveTrapezoid(bump, 0, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidTolerance)
	_, err = AdaptiveTrapezoid(bump, 0, 2, -1.e-5)
	assert.ErrorIs(t, err, ErrInvalidTolerance)
	_, err = AdaptiveTrapezoid(nil, 0, 2, 1.e-5)
	assert.ErrorIs(t, err, ErrNilIntegrand)
	_, err = AdaptiveTrapezoid(bump, 0, 2, 1.e-5, 0)
	assert.ErrorIs(t, err, ErrInvalidRefinement)
	_, err = AdaptiveTrapezoid(bump, 0, 2, 1.e-5, -3)
	assert.ErrorIs(t, err, ErrInvalidRefinement)
}

func TestRomberg(t *testing.T) {
	// Smooth integrand: the tableau wins several digits per level
	R, err := Romberg(bump, 0, 2, 8)
	require.NoError(t, err)
	assert.InDelta(t, refBump(), R.Value, 1.e-10)

	// One level is the plain single-panel trapezoid
	R1, err := Romberg(bump, 0, 2, 1)
	require.NoError(t, err)
	T1, err := Trapezoid(bump, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, T1.Value, R1.Value)

	_, err = Romberg(bump, 0, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
}
