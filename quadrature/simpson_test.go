package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpsonExactForCubic(t *testing.T) {
	// Degree of exactness 3
	var (
		f = func(x float64) float64 { return x * x * x }
	)
	cases := []struct{ a, b float64 }{
		{0, 1},
		{-1, 2},
		{-3, -1},
	}
	for _, tc := range cases {
		exact := 0.25 * (math.Pow(tc.b, 4) - math.Pow(tc.a, 4))
		for _, n := range []int{1, 2, 5, 16} {
			R, err := Simpson(f, tc.a, tc.b, n)
			require.NoError(t, err)
			assert.InDelta(t, exact, R.Value, 1.e-12*math.Max(1, math.Abs(exact)))
		}
	}
}

func TestSimpsonNotExactForQuartic(t *testing.T) {
	// Single panel on [-1,1]: int x^4 = 2/5 exactly, Simpson gives 2/3
	var (
		f = func(x float64) float64 { return math.Pow(x, 4) }
	)
	R, err := Simpson(f, -1, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2./3., R.Value, 1.e-14)
	assert.Greater(t, math.Abs(R.Value-2./5.), 0.1)
}

func TestSimpsonDerivationsAgree(t *testing.T) {
	// Direct piecewise-quadratic weights vs (4 T_2n - T_n)/3
	var (
		f = func(x float64) float64 { return math.Exp(x) * math.Sin(2*x) }
	)
	for _, n := range []int{1, 2, 3, 10, 50} {
		direct, err := Simpson(f, 0, 3, n)
		require.NoError(t, err)
		extrap, err := SimpsonFromTrapezoid(f, 0, 3, n)
		require.NoError(t, err)
		assert.InDelta(t, direct.Value, extrap.Value, 1.e-13*math.Max(1, math.Abs(direct.Value)))
		assert.Equal(t, direct.H, extrap.H)
	}
}

func TestSimpsonConvergenceOrder(t *testing.T) {
	// O(h^4): error drops by ~16 per doubling
	var (
		exact = 2.0
		errs  []float64
	)
	for _, n := range []int{4, 8, 16, 32} {
		R, err := Simpson(math.Sin, 0, math.Pi, n)
		require.NoError(t, err)
		errs = append(errs, math.Abs(R.Value-exact))
	}
	for i := 1; i < len(errs); i++ {
		ratio := errs[i-1] / errs[i]
		assert.InDelta(t, 16, ratio, 2.5)
	}
}

func TestSimpsonInvalidInput(t *testing.T) {
	_, err := Simpson(math.Sin, 0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidSubdivision)
	_, err = SimpsonFromTrapezoid(math.Sin, 5, 1, 4)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
