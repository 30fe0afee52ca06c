package utils

import (
	"math"
)

const (
	NODETOL = 1.e-12
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace produces N equally spaced values covering [a,b] inclusive.
func Linspace(a, b float64, N int) (v []float64) {
	if N == 1 {
		return []float64{a}
	}
	v = make([]float64, N)
	h := (b - a) / float64(N-1)
	for i := range v {
		v[i] = a + float64(i)*h
	}
	v[N-1] = b
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x * x
		y = y * y
	case 7:
		y = x * x * x
		y = y * y * x
	case 8:
		y = x * x
		y = y * y
		y = y * y
	}
	if flipped {
		y = 1. / y
	}
	return
MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}

func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
