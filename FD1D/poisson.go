// Package FD1D discretizes the 1D Dirichlet boundary value problem
//
//	-u''(x) = f(x) on (0,L), u(0) = b0, u(L) = bL
//
// with second-order central differences on a uniform grid and solves the
// resulting symmetric positive definite tridiagonal system.
package FD1D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/go1d/utils"
)

var (
	ErrInvalidNodeCount = errors.New("FD1D: interior node count must be positive")
	ErrInvalidDomain    = errors.New("FD1D: domain length must be positive and finite")
	ErrInvalidBoundary  = errors.New("FD1D: boundary values must be finite")
	ErrNilSource        = errors.New("FD1D: source function must not be nil")
)

// CondWarnThreshold is the estimated condition number above which Solve
// prints a round-off warning. The second-difference matrix conditions as
// O(N^2), so accuracy degrades predictably once N passes ~10^5.
const CondWarnThreshold = 1.e+12

type SourceFunc func(x float64) float64

type Poisson struct {
	// Input parameters
	Source SourceFunc
	L      float64 // domain length
	B0, BL float64 // Dirichlet values at x=0 and x=L
	N      int     // interior node count
}

// Solution carries the interior nodal approximation along with the grid
// and system diagnostics.
type Solution struct {
	X       utils.Vector     // interior node locations x_1..x_N
	U       utils.Vector     // approximation at interior nodes
	H       float64          // grid spacing L/(N+1)
	A       utils.SymTriDiag // system matrix
	B       utils.Vector     // right-hand side with folded boundary terms
	CondEst float64          // spectral condition number estimate of A
}

func NewPoisson(source SourceFunc, L, b0, bL float64, N int) (p *Poisson, err error) {
	switch {
	case source == nil:
		err = ErrNilSource
	case !utils.IsFinite(L) || L <= 0:
		err = ErrInvalidDomain
	case !utils.IsFinite(b0, bL):
		err = ErrInvalidBoundary
	case N <= 0:
		err = ErrInvalidNodeCount
	}
	if err != nil {
		return
	}
	p = &Poisson{
		Source: source,
		L:      L,
		B0:     b0,
		BL:     bL,
		N:      N,
	}
	return
}

// Solve assembles and factorizes the N x N system. The matrix has diagonal
// 2/h^2 and off-diagonal -1/h^2; the boundary values enter the first and
// last entries of the right-hand side as b0/h^2 and bL/h^2.
func (p *Poisson) Solve() (sol *Solution, err error) {
	var (
		N   = p.N
		h   = p.L / float64(N+1)
		oh2 = 1. / (h * h)
	)
	x := utils.NewVector(N)
	b := utils.NewVector(N)
	var (
		xd = x.DataP()
		bd = b.DataP()
	)
	for j := 0; j < N; j++ {
		xd[j] = float64(j+1) * h
		bd[j] = p.Source(xd[j])
	}
	bd[0] += p.B0 * oh2
	bd[N-1] += p.BL * oh2
	A := utils.NewSymTriDiagConstant(N, 2*oh2, -oh2)

	cond := condSecondDifference(N)
	if cond > CondWarnThreshold {
		fmt.Printf("warning: condition estimate %8.2e exceeds %8.2e, round-off will dominate\n",
			cond, CondWarnThreshold)
	}

	u, err := A.SolveVec(b)
	if err != nil {
		return nil, fmt.Errorf("FD1D solve failed for N = %d: %w", N, err)
	}
	sol = &Solution{
		X:       x,
		U:       u,
		H:       h,
		A:       A,
		B:       b,
		CondEst: cond,
	}
	return
}

// Full prepends and appends the prescribed boundary values, returning the
// complete nodal approximation on all N+2 grid points.
func (p *Poisson) Full(sol *Solution) (x, u utils.Vector) {
	var (
		N = p.N
	)
	x = utils.NewVector(N + 2)
	u = utils.NewVector(N + 2)
	var (
		xd = x.DataP()
		ud = u.DataP()
	)
	xd[0], ud[0] = 0, p.B0
	xd[N+1], ud[N+1] = p.L, p.BL
	copy(xd[1:N+1], sol.X.DataP())
	copy(ud[1:N+1], sol.U.DataP())
	return
}

// The eigenvalues of the h^-2 tridiag(-1,2,-1) stencil are known in closed
// form, so the 2-norm condition number needs no factorization:
// lambda_j = (4/h^2) sin^2(j pi / (2(N+1))).
func condSecondDifference(N int) float64 {
	var (
		arg = math.Pi / float64(2*(N+1))
	)
	lMin := math.Sin(arg)
	lMax := math.Sin(float64(N) * arg)
	return (lMax * lMax) / (lMin * lMin)
}

// StudyPoint is one entry of a grid-refinement convergence study.
type StudyPoint struct {
	N      int
	H      float64
	MaxErr float64
}

// RunStudy solves the problem across a doubling sequence of node counts
// and measures the maximum nodal error against the exact solution. Output
// rows feed the convOrder tool.
func (p *Poisson) RunStudy(exact func(x float64) float64, levels int) (pts []StudyPoint, err error) {
	var (
		N = p.N
	)
	for lev := 0; lev < levels; lev++ {
		trial := *p
		trial.N = N
		var sol *Solution
		if sol, err = trial.Solve(); err != nil {
			return
		}
		e := sol.X.Copy().Apply(exact).Subtract(sol.U)
		pts = append(pts, StudyPoint{N: N, H: sol.H, MaxErr: e.MaxAbs()})
		N *= 2
	}
	return
}
