package utils

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotPositiveDefinite indicates the banded Cholesky factorization failed.
var ErrNotPositiveDefinite = errors.New("utils: symmetric tridiagonal matrix is not positive definite")

// SymTriDiag is a symmetric tridiagonal matrix held in gonum's banded
// storage, the system-matrix shape produced by the 1D second-difference
// stencil and by piecewise-linear Galerkin assembly.
type SymTriDiag struct {
	B *mat.SymBandDense
}

func NewSymTriDiag(diag, off []float64) (S SymTriDiag) {
	var (
		n = len(diag)
	)
	if len(off) != n-1 {
		err := fmt.Errorf("mismatch in allocation: NewSymTriDiag len(diag) = %v, len(off) = %v\n", n, len(off))
		panic(err)
	}
	// a single-unknown system has no off-diagonal band to store
	k := 1
	if n == 1 {
		k = 0
	}
	data := make([]float64, n*(k+1))
	for i := 0; i < n; i++ {
		data[i*(k+1)] = diag[i]
		if i < n-1 {
			data[i*(k+1)+1] = off[i]
		}
	}
	S.B = mat.NewSymBandDense(n, k, data)
	return
}

func NewSymTriDiagConstant(n int, diagVal, offVal float64) SymTriDiag {
	return NewSymTriDiag(ConstArray(n, diagVal), ConstArray(n-1, offVal))
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (s SymTriDiag) Dims() (r, c int)    { return s.B.Dims() }
func (s SymTriDiag) At(i, j int) float64 { return s.B.At(i, j) }
func (s SymTriDiag) T() mat.Matrix       { return s.B.T() }

func (s SymTriDiag) Order() int {
	n, _ := s.B.Dims()
	return n
}

func (s SymTriDiag) Copy() SymTriDiag {
	raw := s.B.RawSymBand()
	data := make([]float64, len(raw.Data))
	copy(data, raw.Data)
	return SymTriDiag{mat.NewSymBandDense(raw.N, raw.K, data)}
}

// Chainable methods
func (s SymTriDiag) Add(a SymTriDiag) SymTriDiag { // Changes receiver
	var (
		data  = s.B.RawSymBand().Data
		dataA = a.B.RawSymBand().Data
	)
	if len(data) != len(dataA) {
		panic("dimension mismatch in SymTriDiag Add")
	}
	for i := range data {
		data[i] += dataA[i]
	}
	return s
}

func (s SymTriDiag) Scale(a float64) SymTriDiag { // Changes receiver
	var (
		data = s.B.RawSymBand().Data
	)
	for i := range data {
		data[i] *= a
	}
	return s
}

// MulVec computes A*v without forming a dense matrix.
func (s SymTriDiag) MulVec(v Vector) (r Vector) {
	var (
		n    = s.Order()
		data = v.DataP()
	)
	r = NewVector(n)
	rd := r.DataP()
	for i := 0; i < n; i++ {
		sum := s.B.At(i, i) * data[i]
		if i > 0 {
			sum += s.B.At(i, i-1) * data[i-1]
		}
		if i < n-1 {
			sum += s.B.At(i, i+1) * data[i+1]
		}
		rd[i] = sum
	}
	return
}

// SolveVec solves A*x = b through the banded Cholesky factorization,
// exploiting the tridiagonal structure.
func (s SymTriDiag) SolveVec(b Vector) (x Vector, err error) {
	var (
		ch mat.BandCholesky
		n  = s.Order()
	)
	if b.Len() != n {
		err = fmt.Errorf("dimension mismatch: matrix order %d, rhs length %d", n, b.Len())
		return
	}
	if ok := ch.Factorize(s.B); !ok {
		err = ErrNotPositiveDefinite
		return
	}
	x = NewVector(n)
	if err = ch.SolveVecTo(x.V, b.V); err != nil {
		err = fmt.Errorf("banded Cholesky solve failed: %w", err)
	}
	return
}

func (s SymTriDiag) String() string {
	return fmt.Sprintf("%v\n", mat.Formatted(s, mat.Squeeze()))
}
