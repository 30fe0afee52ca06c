/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"sort"
)

// NamedSource is a registered right-hand side for the BVP solvers. When a
// particular solution P with -P'' = f is known, the exact solution for any
// Dirichlet data follows by adding the linear function matching the
// boundary values, which is what Exact does.
type NamedSource struct {
	F          func(x float64) float64
	Particular func(x float64) float64 // nil when no closed form is carried
}

// Exact returns the exact solution of -u'' = f on (0,L) with u(0)=b0 and
// u(L)=bL, or nil when no particular solution is registered.
func (s NamedSource) Exact(L, b0, bL float64) func(x float64) float64 {
	if s.Particular == nil {
		return nil
	}
	var (
		c0 = b0 - s.Particular(0)
		c1 = (bL - s.Particular(L) - c0) / L
	)
	return func(x float64) float64 {
		return s.Particular(x) + c0 + c1*x
	}
}

var sources = map[string]NamedSource{
	"sin": {
		F:          math.Sin,
		Particular: math.Sin,
	},
	"x": {
		F:          func(x float64) float64 { return x },
		Particular: func(x float64) float64 { return -x * x * x / 6. },
	},
	"one": {
		F:          func(x float64) float64 { return 1 },
		Particular: func(x float64) float64 { return -0.5 * x * x },
	},
	"bump": {
		F: func(x float64) float64 { return x * x * math.Exp(-2*x) },
	},
}

// NamedIntegrand is a registered integrand for the quadrature commands,
// with an antiderivative where one is carried so runs can print the true
// error.
type NamedIntegrand struct {
	F    func(x float64) float64
	Anti func(x float64) float64 // nil when no closed form is carried
}

var integrands = map[string]NamedIntegrand{
	"sin": {
		F:    math.Sin,
		Anti: func(x float64) float64 { return -math.Cos(x) },
	},
	"x2": {
		F:    func(x float64) float64 { return x * x },
		Anti: func(x float64) float64 { return x * x * x / 3. },
	},
	"x3": {
		F:    func(x float64) float64 { return x * x * x },
		Anti: func(x float64) float64 { return 0.25 * x * x * x * x },
	},
	"x4": {
		F:    func(x float64) float64 { return math.Pow(x, 4) },
		Anti: func(x float64) float64 { return math.Pow(x, 5) / 5. },
	},
	"bump": {
		F:    func(x float64) float64 { return x * x * math.Exp(-2*x) },
		Anti: func(x float64) float64 { return -(0.5*x*x + 0.5*x + 0.25) * math.Exp(-2*x) },
	},
	"runge": {
		F:    func(x float64) float64 { return 1. / (1. + 25.*x*x) },
		Anti: func(x float64) float64 { return math.Atan(5.*x) / 5. },
	},
}

func sourceNames() []string    { return sortedKeys(sources) }
func integrandNames() []string { return sortedKeys(integrands) }

func sortedKeys[V any](m map[string]V) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func lookupSource(name string) (NamedSource, error) {
	s, ok := sources[name]
	if !ok {
		return NamedSource{}, fmt.Errorf("unknown source %q, have %v", name, sourceNames())
	}
	return s, nil
}

func lookupIntegrand(name string) (NamedIntegrand, error) {
	g, ok := integrands[name]
	if !ok {
		return NamedIntegrand{}, fmt.Errorf("unknown integrand %q, have %v", name, integrandNames())
	}
	return g, nil
}
