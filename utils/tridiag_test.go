package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymTriDiag(t *testing.T) {
	// Second-difference matrix on 4 unknowns: known inverse behavior
	{
		A := NewSymTriDiagConstant(4, 2, -1)
		assert.Equal(t, 4, A.Order())
		assert.True(t, near(A.At(0, 0), 2))
		assert.True(t, near(A.At(1, 0), -1))
		assert.True(t, near(A.At(0, 1), -1))
		assert.True(t, near(A.At(0, 2), 0))

		// A * [1,1,1,1] = [1,0,0,1]
		v := NewVectorConstant(4, 1)
		r := A.MulVec(v)
		assert.True(t, near(r.AtVec(0), 1))
		assert.True(t, near(r.AtVec(1), 0))
		assert.True(t, near(r.AtVec(2), 0))
		assert.True(t, near(r.AtVec(3), 1))
	}
	// Solve then multiply back
	{
		A := NewSymTriDiagConstant(5, 2, -1)
		b := NewVector(5, []float64{1, 2, 3, 2, 1})
		x, err := A.SolveVec(b)
		assert.NoError(t, err)
		r := A.MulVec(x).Subtract(b)
		assert.True(t, r.MaxAbs() < 1.e-12)
	}
	// Single unknown: banded storage degenerates to the diagonal alone
	{
		A := NewSymTriDiag([]float64{4}, nil)
		assert.Equal(t, 1, A.Order())
		x, err := A.SolveVec(NewVector(1, []float64{8}))
		assert.NoError(t, err)
		assert.True(t, near(x.AtVec(0), 2))
		assert.True(t, near(A.MulVec(x).AtVec(0), 8))
		assert.True(t, near(A.At(0, 0), 4))
	}
	// Indefinite matrix must be rejected by the factorization
	{
		A := NewSymTriDiagConstant(3, 0, 1)
		_, err := A.SolveVec(NewVectorConstant(3, 1))
		assert.ErrorIs(t, err, ErrNotPositiveDefinite)
	}
	// Dimension mismatch
	{
		A := NewSymTriDiagConstant(3, 2, -1)
		_, err := A.SolveVec(NewVectorConstant(4, 1))
		assert.Error(t, err)
	}
}

func TestSymTriDiagChaining(t *testing.T) {
	A := NewSymTriDiagConstant(3, 2, -1)
	M := NewSymTriDiagConstant(3, 4, 1)
	S := A.Copy().Add(M).Scale(0.5)
	assert.True(t, near(S.At(0, 0), 3))
	assert.True(t, near(S.At(0, 1), 0))
	// receiver math must not disturb the originals
	assert.True(t, near(A.At(0, 0), 2))
	assert.True(t, near(M.At(0, 1), 1))
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{-2, 1, 3})
	assert.True(t, near(v.Min(), -2))
	assert.True(t, near(v.Max(), 3))
	assert.True(t, near(v.MaxAbs(), 3))

	w := v.Copy().Apply(math.Abs)
	assert.True(t, near(w.AtVec(0), 2))
	assert.True(t, near(v.AtVec(0), -2))

	u := v.Copy().Scale(2).AddScalar(1)
	assert.True(t, near(u.AtVec(2), 7))

	d := u.Copy().Subtract(v)
	assert.True(t, near(d.AtVec(0), -1))
}

func TestLinspace(t *testing.T) {
	x := Linspace(0, 1, 5)
	assert.Len(t, x, 5)
	assert.True(t, near(x[0], 0))
	assert.True(t, near(x[2], 0.5))
	assert.True(t, near(x[4], 1))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(a) || math.Abs(a-b) < NODETOL {
		l = true
	}
	return
}
