// Package quadrature implements the composite Newton-Cotes rules and the
// Richardson-extrapolation machinery built on top of the trapezoid rule,
// including a node-doubling adaptive integrator.
package quadrature

import (
	"errors"

	"github.com/notargets/go1d/utils"
)

type Integrand func(x float64) float64

var (
	ErrInvalidInterval     = errors.New("quadrature: interval must satisfy a < b with finite endpoints")
	ErrInvalidSubdivision  = errors.New("quadrature: subdivision count must be positive")
	ErrInvalidTolerance    = errors.New("quadrature: tolerance must be positive and finite")
	ErrNilIntegrand        = errors.New("quadrature: integrand must not be nil")
	ErrInvalidRefinement   = errors.New("quadrature: refinement limit must be positive")
	ErrToleranceNotReached = errors.New("quadrature: tolerance not reached within the refinement limit")
)

// Result bundles a fixed-subdivision estimate with its node spacing and
// evaluation count so refinement chains can account for reused work.
type Result struct {
	Value float64 // integral estimate
	H     float64 // node spacing of the rule
	N     int     // number of subdivisions
	Evals int     // integrand evaluations spent
}

func validate(f Integrand, a, b float64, n int) error {
	if f == nil {
		return ErrNilIntegrand
	}
	if !utils.IsFinite(a, b) || a >= b {
		return ErrInvalidInterval
	}
	if n <= 0 {
		return ErrInvalidSubdivision
	}
	return nil
}
