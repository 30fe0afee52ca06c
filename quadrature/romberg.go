package quadrature

import (
	"math"

	"github.com/notargets/go1d/utils"
)

// DefaultMaxRefinements caps the node-doubling loop of the adaptive
// integrator. The loop in the underlying method description is unbounded;
// 20 doublings (about 10^6 subdivisions) is far past the point where
// round-off noise stops tolerances from being met, so exhausting the cap
// signals a tolerance that cannot be achieved rather than slow convergence.
const DefaultMaxRefinements = 20

// Richardson combines two estimates of order p at resolutions n and 2n
// into one of higher order: (2^p Q_2n - Q_n)/(2^p - 1).
func Richardson(qn, q2n float64, p float64) float64 {
	var (
		fac = math.Pow(2, p)
	)
	return (fac*q2n - qn) / (fac - 1)
}

// Romberg builds the extrapolation tableau over `levels` trapezoid
// doublings, reusing prior evaluations at each doubling, and returns the
// highest-order diagonal entry. Column j cancels the h^(2j) error term.
func Romberg(f Integrand, a, b float64, levels int) (R Result, err error) {
	if err = validate(f, a, b, levels); err != nil {
		return
	}
	var (
		table = make([][]float64, levels)
		t     Result
	)
	for i := 0; i < levels; i++ {
		if i == 0 {
			if t, err = Trapezoid(f, a, b, 1); err != nil {
				return
			}
		} else {
			t = Refine(f, a, b, t)
		}
		table[i] = make([]float64, i+1)
		table[i][0] = t.Value
		for j := 1; j <= i; j++ {
			table[i][j] = Richardson(table[i-1][j-1], table[i][j-1], float64(2*j))
		}
	}
	R = Result{
		Value: table[levels-1][levels-1],
		H:     t.H,
		N:     t.N,
		Evals: t.Evals,
	}
	return
}

// AdaptiveResult reports the converged extrapolated estimate together with
// the discrepancy that stopped the iteration and the work spent.
type AdaptiveResult struct {
	Value       float64 // extrapolated estimate
	Raw         float64 // trapezoid estimate at the final resolution
	H           float64 // final node spacing
	Eta         float64 // |extrapolated - raw| at termination
	Refinements int
	Evals       int
}

// AdaptiveTrapezoid doubles the trapezoid subdivision count, extrapolates
// each pair of consecutive estimates, and stops once the discrepancy
// eta = |extrapolated - T_2n| drops to tol. Newly introduced nodes are the
// only fresh evaluations per doubling. An optional refinement cap replaces
// DefaultMaxRefinements; exceeding it returns ErrToleranceNotReached along
// with the best estimate found.
func AdaptiveTrapezoid(f Integrand, a, b, tol float64, maxRefinements ...int) (R AdaptiveResult, err error) {
	if err = validate(f, a, b, 1); err != nil {
		return
	}
	var (
		maxRefine = DefaultMaxRefinements
	)
	if len(maxRefinements) != 0 {
		maxRefine = maxRefinements[0]
	}
	if maxRefine <= 0 {
		err = ErrInvalidRefinement
		return
	}
	if tol <= 0 || !utils.IsFinite(tol) {
		err = ErrInvalidTolerance
		return
	}
	t, _ := Trapezoid(f, a, b, 1)
	for k := 1; k <= maxRefine; k++ {
		t2 := Refine(f, a, b, t)
		extrap := Richardson(t.Value, t2.Value, 2)
		eta := math.Abs(extrap - t2.Value)
		R = AdaptiveResult{
			Value:       extrap,
			Raw:         t2.Value,
			H:           t2.H,
			Eta:         eta,
			Refinements: k,
			Evals:       t2.Evals,
		}
		if eta <= tol {
			return
		}
		t = t2
	}
	err = ErrToleranceNotReached
	return
}
