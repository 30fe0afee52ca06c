package quadrature

// Simpson computes the composite Simpson estimate on n panels of [a,b].
// Each panel [x_i, x_i+1] contributes (h/6)(f_i + 4 f_mid + f_i+1), which
// collapses to weights 1/6 at the outer endpoints, 1/3 at interior panel
// nodes and 2/3 at panel midpoints, scaled by h = (b-a)/n. Degree of
// exactness 3, convergence order 4.
//
// The reported spacing is the effective node spacing h/2, since the rule
// samples at 2n+1 points.
func Simpson(f Integrand, a, b float64, n int) (R Result, err error) {
	if err = validate(f, a, b, n); err != nil {
		return
	}
	var (
		h   = (b - a) / float64(n)
		sum = (f(a) + f(b)) / 6.
	)
	for i := 1; i < n; i++ {
		sum += f(a+float64(i)*h) / 3.
	}
	for i := 0; i < n; i++ {
		sum += 2. * f(a+(float64(i)+0.5)*h) / 3.
	}
	R = Result{
		Value: h * sum,
		H:     0.5 * h,
		N:     n,
		Evals: 2*n + 1,
	}
	return
}

// SimpsonFromTrapezoid derives the same n-panel Simpson estimate by
// Richardson extrapolation of the trapezoid rule, S_2n = (4 T_2n - T_n)/3.
// Both derivations agree to round-off.
func SimpsonFromTrapezoid(f Integrand, a, b float64, n int) (R Result, err error) {
	var Tn Result
	if Tn, err = Trapezoid(f, a, b, n); err != nil {
		return
	}
	T2n := Refine(f, a, b, Tn)
	R = Result{
		Value: Richardson(Tn.Value, T2n.Value, 2),
		H:     T2n.H,
		N:     n,
		Evals: T2n.Evals,
	}
	return
}
