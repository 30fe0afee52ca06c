package quadrature

// Trapezoid computes the composite trapezoid estimate on n subdivisions of
// [a,b]: weight 1/2 at the two endpoints, 1 at each interior node, scaled
// by h = (b-a)/n. Degree of exactness 1, convergence order 2.
func Trapezoid(f Integrand, a, b float64, n int) (R Result, err error) {
	if err = validate(f, a, b, n); err != nil {
		return
	}
	var (
		h   = (b - a) / float64(n)
		sum = 0.5 * (f(a) + f(b))
	)
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	R = Result{
		Value: h * sum,
		H:     h,
		N:     n,
		Evals: n + 1,
	}
	return
}

// Refine doubles the subdivision count of a prior trapezoid estimate,
// evaluating the integrand only at the newly introduced odd-indexed nodes:
//
//	T_2n = T_n/2 + h_2n * sum f(odd nodes)
//
// The result is identical (to round-off) to Trapezoid with 2n subdivisions
// at half the fresh evaluation cost.
func Refine(f Integrand, a, b float64, prev Result) (R Result) {
	var (
		n2  = 2 * prev.N
		h2  = 0.5 * prev.H
		sum float64
	)
	for i := 1; i < n2; i += 2 {
		sum += f(a + float64(i)*h2)
	}
	R = Result{
		Value: 0.5*prev.Value + h2*sum,
		H:     h2,
		N:     n2,
		Evals: prev.Evals + prev.N,
	}
	return
}
