package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) (V Vector) {
	var m *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v\n", N, len(dataO[0]))
			panic(err)
		}
		m = mat.NewVecDense(N, dataO[0])
	} else {
		m = mat.NewVecDense(N, make([]float64, N))
	}
	return Vector{m}
}

func NewVectorConstant(N int, val float64) Vector {
	return NewVector(N, ConstArray(N, val))
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() Vector {
	d := make([]float64, v.Len())
	copy(d, v.V.RawVector().Data)
	return NewVector(v.Len(), d)
}

// Chainable (extended) methods
func (v Vector) Set(i int, val float64) Vector { v.V.SetVec(i, val); return v }

func (v Vector) Subtract(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

func (v Vector) Add(a Vector) Vector { v.V.AddVec(v.V, a.V); return v }

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

// MaxAbs returns the infinity norm of the vector.
func (v Vector) MaxAbs() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	for _, val := range data {
		if val < 0 {
			val = -val
		}
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) String() (s string) {
	s = fmt.Sprintf("%v\n", mat.Formatted(v.V, mat.Squeeze()))
	return
}
