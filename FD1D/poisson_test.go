package FD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -u'' = sin(x) on (0, 2pi), u(0)=1, u(2pi)=2
// exact: u(x) = sin(x) + x/(2pi) + 1
func sineProblem(N int) (*Poisson, func(float64) float64) {
	p, err := NewPoisson(math.Sin, 2*math.Pi, 1, 2, N)
	if err != nil {
		panic(err)
	}
	exact := func(x float64) float64 { return math.Sin(x) + x/(2*math.Pi) + 1 }
	return p, exact
}

func TestPoissonSolve(t *testing.T) {
	p, exact := sineProblem(200)
	sol, err := p.Solve()
	require.NoError(t, err)

	assert.Equal(t, 200, sol.X.Len())
	assert.InDelta(t, 2*math.Pi/201., sol.H, 1.e-14)
	assert.InDelta(t, sol.H, sol.X.AtVec(0), 1.e-14)

	// residual of the solved system
	r := sol.A.MulVec(sol.U).Subtract(sol.B)
	assert.Less(t, r.MaxAbs()*sol.H*sol.H, 1.e-9)

	e := sol.X.Copy().Apply(exact).Subtract(sol.U)
	assert.Less(t, e.MaxAbs(), 1.e-3)
}

func TestPoissonFullGrid(t *testing.T) {
	p, _ := sineProblem(50)
	sol, err := p.Solve()
	require.NoError(t, err)
	x, u := p.Full(sol)
	assert.Equal(t, 52, x.Len())
	assert.InDelta(t, 0, x.AtVec(0), 1.e-14)
	assert.InDelta(t, 2*math.Pi, x.AtVec(51), 1.e-14)
	assert.InDelta(t, 1, u.AtVec(0), 1.e-14)
	assert.InDelta(t, 2, u.AtVec(51), 1.e-14)
	assert.InDelta(t, sol.U.AtVec(0), u.AtVec(1), 1.e-14)
}

func TestPoissonQuadraticConvergence(t *testing.T) {
	// max nodal error must shrink by ~4 per doubling of N
	p, exact := sineProblem(25)
	pts, err := p.RunStudy(exact, 5)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	for i := 1; i < len(pts); i++ {
		ratio := pts[i-1].MaxErr / pts[i].MaxErr
		assert.InDelta(t, 4, ratio, 0.5, "levels %d -> %d", pts[i-1].N, pts[i].N)
	}
}

func TestPoissonConditionEstimate(t *testing.T) {
	// cond grows as O(N^2): ~4(N+1)^2/pi^2
	for _, N := range []int{10, 100, 1000} {
		p, _ := sineProblem(N)
		sol, err := p.Solve()
		require.NoError(t, err)
		expect := 4 * math.Pow(float64(N+1)/math.Pi, 2)
		assert.InDelta(t, 1, sol.CondEst/expect, 0.15, "N = %d", N)
	}
}

func TestPoissonSingleNode(t *testing.T) {
	// N=1 is the smallest valid system: one unknown at L/2. For constant
	// f with zero boundaries the discrete value is f L^2/8 exactly.
	p, err := NewPoisson(func(x float64) float64 { return 1 }, 1, 0, 0, 1)
	require.NoError(t, err)
	sol, err := p.Solve()
	require.NoError(t, err)
	require.Equal(t, 1, sol.U.Len())
	assert.InDelta(t, 0.5, sol.X.AtVec(0), 1.e-14)
	assert.InDelta(t, 1./8., sol.U.AtVec(0), 1.e-14)

	// zero source: the single node is the boundary average
	p, err = NewPoisson(func(x float64) float64 { return 0 }, 2, 3, 5, 1)
	require.NoError(t, err)
	sol, err = p.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 4, sol.U.AtVec(0), 1.e-14)
}

func TestPoissonBoundaryFolding(t *testing.T) {
	// f = 0 with b0 = bL = 5 must reproduce the constant exactly
	p, err := NewPoisson(func(x float64) float64 { return 0 }, 1, 5, 5, 17)
	require.NoError(t, err)
	sol, err := p.Solve()
	require.NoError(t, err)
	e := sol.U.Copy().AddScalar(-5)
	assert.Less(t, e.MaxAbs(), 1.e-10)
}

func TestNewPoissonValidation(t *testing.T) {
	src := math.Sin
	_, err := NewPoisson(nil, 1, 0, 0, 10)
	assert.ErrorIs(t, err, ErrNilSource)
	_, err = NewPoisson(src, 0, 0, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidDomain)
	_, err = NewPoisson(src, -2, 0, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidDomain)
	_, err = NewPoisson(src, 1, math.NaN(), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidBoundary)
	_, err = NewPoisson(src, 1, 0, math.Inf(1), 10)
	assert.ErrorIs(t, err, ErrInvalidBoundary)
	_, err = NewPoisson(src, 1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidNodeCount)
}
