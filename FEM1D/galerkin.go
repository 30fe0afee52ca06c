// Package FEM1D solves the 1D boundary value problem
//
//	-k u''(x) = f(x) on (0,L), u(0) = u(L) = 0
//
// by a Galerkin projection onto piecewise-linear hat functions on a uniform
// grid of n segments. The hats' local support makes both the stiffness and
// mass matrices symmetric tridiagonal with closed-form entries, and their
// cardinality (H_i(x_j) = delta_ij) makes the solved coefficients the nodal
// values directly.
package FEM1D

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/go1d/utils"
)

var (
	ErrInvalidSegments     = errors.New("FEM1D: segment count must be at least 2")
	ErrInvalidDomain       = errors.New("FEM1D: domain length must be positive and finite")
	ErrInvalidConductivity = errors.New("FEM1D: conductivity must be positive and finite")
	ErrNilSource           = errors.New("FEM1D: source function must not be nil")
)

type SourceFunc func(x float64) float64

type Galerkin struct {
	// Input parameters
	Source SourceFunc
	K      float64 // conductivity
	L      float64 // domain length
	N      int     // segment count: n+1 nodes, n-1 free unknowns
}

type Solution struct {
	X         utils.Vector     // interior node locations x_1..x_n-1
	U         utils.Vector     // nodal solution values (= hat coefficients)
	H         float64          // segment length L/n
	Stiffness utils.SymTriDiag // int k H_i' H_j'
	Mass      utils.SymTriDiag // int H_i H_j closed form
	F         utils.Vector     // load vector
	Residual  float64          // inf-norm of (A+M)u - f via sparse assembly
}

func NewGalerkin(source SourceFunc, k, L float64, n int) (g *Galerkin, err error) {
	switch {
	case source == nil:
		err = ErrNilSource
	case !utils.IsFinite(k) || k <= 0:
		err = ErrInvalidConductivity
	case !utils.IsFinite(L) || L <= 0:
		err = ErrInvalidDomain
	case n < 2:
		err = ErrInvalidSegments
	}
	if err != nil {
		return
	}
	g = &Galerkin{
		Source: source,
		K:      k,
		L:      L,
		N:      n,
	}
	return
}

// Solve assembles (A+M)u = f over the n-1 interior unknowns and solves it
// through the banded Cholesky factorization. A is the stiffness matrix
// (diagonal 2k/h, off-diagonal -k/h), M the mass matrix in its course
// closed form (diagonal 2h/3, off-diagonal -h/3), and the load entries
// approximate int f H_i dx by the trapezoid average
// (h/4)(f(x_i-1) + 2 f(x_i) + f(x_i+1)), itself second-order accurate, so
// refining the load integration further would buy nothing.
func (g *Galerkin) Solve() (sol *Solution, err error) {
	var (
		n = g.N
		m = n - 1 // free unknowns
		h = g.L / float64(n)
	)
	x := utils.NewVector(m)
	f := utils.NewVector(m)
	var (
		xd = x.DataP()
		fd = f.DataP()
	)
	for i := 0; i < m; i++ {
		xd[i] = float64(i+1) * h
		fd[i] = (h / 4.) * (g.Source(xd[i]-h) + 2.*g.Source(xd[i]) + g.Source(xd[i]+h))
	}

	A := assembleStiffness(g.K, h, n)
	M := utils.NewSymTriDiagConstant(m, 2.*h/3., -h/3.)
	S := A.Copy().Add(M)

	u, err := S.SolveVec(f)
	if err != nil {
		return nil, fmt.Errorf("FEM1D solve failed for n = %d: %w", n, err)
	}

	sol = &Solution{
		X:         x,
		U:         u,
		H:         h,
		Stiffness: A,
		Mass:      M,
		F:         f,
		Residual:  residualNorm(S, u, f),
	}
	return
}

// assembleStiffness scatters the local element matrix (k/h)[[1,-1],[-1,1]]
// over the n segments into a sparse accumulator, dropping the boundary
// rows and columns, then re-packs the tridiagonal into banded storage. The
// detour through a general accumulator keeps the element loop in the shape
// it takes for non-uniform grids and higher-order bases.
func assembleStiffness(k, h float64, n int) utils.SymTriDiag {
	var (
		m  = n - 1
		ke = k / h
	)
	dok := sparse.NewDOK(m, m)
	for e := 0; e < n; e++ {
		// global node numbers of segment e, shifted to unknown indices
		gl, gr := e-1, e
		if gl >= 0 {
			dok.Set(gl, gl, dok.At(gl, gl)+ke)
		}
		if gr < m {
			dok.Set(gr, gr, dok.At(gr, gr)+ke)
		}
		if gl >= 0 && gr < m {
			dok.Set(gl, gr, dok.At(gl, gr)-ke)
			dok.Set(gr, gl, dok.At(gr, gl)-ke)
		}
	}
	csr := dok.ToCSR()
	diag := make([]float64, m)
	off := make([]float64, m-1)
	for i := 0; i < m; i++ {
		diag[i] = csr.At(i, i)
		if i < m-1 {
			off[i] = csr.At(i, i+1)
		}
	}
	return utils.NewSymTriDiag(diag, off)
}

func residualNorm(S utils.SymTriDiag, u, f utils.Vector) float64 {
	return S.MulVec(u).Subtract(f).MaxAbs()
}

// Full returns the nodal approximation on all n+1 grid points including the
// zero Dirichlet boundaries.
func (g *Galerkin) Full(sol *Solution) (x, u utils.Vector) {
	var (
		n = g.N
	)
	x = utils.NewVector(n + 1)
	u = utils.NewVector(n + 1)
	xd := x.DataP()
	copy(xd[1:n], sol.X.DataP())
	copy(u.DataP()[1:n], sol.U.DataP())
	xd[n] = g.L
	return
}

// StudyPoint is one entry of a grid-refinement convergence study.
type StudyPoint struct {
	N      int
	H      float64
	MaxErr float64
}

// RunStudy solves across a doubling sequence of segment counts and records
// the maximum nodal error against a reference solution.
func (g *Galerkin) RunStudy(exact func(x float64) float64, levels int) (pts []StudyPoint, err error) {
	var (
		n = g.N
	)
	for lev := 0; lev < levels; lev++ {
		trial := *g
		trial.N = n
		var sol *Solution
		if sol, err = trial.Solve(); err != nil {
			return
		}
		e := sol.X.Copy().Apply(exact).Subtract(sol.U)
		pts = append(pts, StudyPoint{N: n, H: sol.H, MaxErr: e.MaxAbs()})
		n *= 2
	}
	return
}
