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
	"os"
	"strings"
	"time"

	"github.com/notargets/go1d/InputParameters"
	"github.com/notargets/go1d/quadrature"
	"github.com/spf13/cobra"
)

type RuleType uint8

const (
	R_Trapezoid RuleType = iota
	R_Simpson
	R_Romberg
	R_Adaptive
)

func (r RuleType) String() string {
	names := []string{"Trapezoid", "Simpson", "Romberg", "Adaptive"}
	if int(r) < len(names) {
		return names[r]
	}
	return "Invalid"
}

func parseRule(name string) (RuleType, error) {
	for r := R_Trapezoid; r <= R_Adaptive; r++ {
		if strings.EqualFold(name, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rule %q, have [Trapezoid Simpson Romberg Adaptive]", name)
}

type ModelQuad struct {
	Rule           RuleType
	A, B           float64
	Panels         int
	Tol            float64
	MaxRefinements int
	IntegrandName  string
}

// QuadCmd represents the quad command
var QuadCmd = &cobra.Command{
	Use:   "quad",
	Short: "Composite quadrature and Richardson extrapolation",
	Long: `
Integrates a named function over [a,b] with the trapezoid or Simpson
rule at a fixed subdivision count, a Romberg tableau, or the adaptive
node-doubling trapezoid integrator,

go1d quad -r adaptive -i bump -a 0 -b 2 --tol 1e-5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			mq ModelQuad
			ip InputParameters.InputParameters1D
		)
		if fileName, _ := cmd.Flags().GetString("inputFile"); len(fileName) != 0 {
			data, err := os.ReadFile(fileName)
			if err != nil {
				return err
			}
			if err = ip.Parse(data); err != nil {
				return err
			}
			ip.Print()
			mq = quadFromParameters(&ip)
		}
		if name, _ := cmd.Flags().GetString("rule"); cmd.Flags().Changed("rule") || len(ip.Rule) == 0 {
			r, err := parseRule(name)
			if err != nil {
				return err
			}
			mq.Rule = r
		}
		overrideFloat(cmd, "xLeft", &mq.A)
		if cmd.Flags().Changed("xRight") || mq.B == 0 {
			mq.B, _ = cmd.Flags().GetFloat64("xRight")
		}
		overrideInt(cmd, "n", &mq.Panels)
		if cmd.Flags().Changed("tol") || mq.Tol == 0 {
			mq.Tol, _ = cmd.Flags().GetFloat64("tol")
		}
		overrideInt(cmd, "maxRefine", &mq.MaxRefinements)
		overrideString(cmd, "integrand", &mq.IntegrandName)
		return RunQuad(&mq)
	},
}

func init() {
	rootCmd.AddCommand(QuadCmd)
	QuadCmd.Flags().StringP("rule", "r", "Trapezoid", "rule to apply: Trapezoid, Simpson, Romberg or Adaptive")
	QuadCmd.Flags().StringP("integrand", "i", "sin", fmt.Sprintf("integrand, one of %v", integrandNames()))
	QuadCmd.Flags().Float64P("xLeft", "a", 0, "left endpoint")
	QuadCmd.Flags().Float64P("xRight", "b", math.Pi, "right endpoint")
	QuadCmd.Flags().IntP("n", "n", 16, "subdivision count (levels for Romberg)")
	QuadCmd.Flags().Float64("tol", 1.e-5, "target accuracy for the adaptive rule")
	QuadCmd.Flags().Int("maxRefine", quadrature.DefaultMaxRefinements, "adaptive refinement cap")
	QuadCmd.Flags().StringP("inputFile", "F", "", "YAML problem description file")
}

func quadFromParameters(ip *InputParameters.InputParameters1D) (mq ModelQuad) {
	mq = ModelQuad{
		A:              ip.XLeft,
		B:              ip.XRight,
		Panels:         ip.Panels,
		Tol:            ip.Tolerance,
		MaxRefinements: ip.MaxRefinements,
		IntegrandName:  ip.Integrand,
	}
	if r, err := parseRule(ip.Rule); err == nil {
		mq.Rule = r
	}
	return
}

func RunQuad(mq *ModelQuad) (err error) {
	g, err := lookupIntegrand(mq.IntegrandName)
	if err != nil {
		return
	}
	var (
		start = time.Now()
		value float64
		R     quadrature.Result
	)
	switch mq.Rule {
	case R_Trapezoid:
		R, err = quadrature.Trapezoid(g.F, mq.A, mq.B, mq.Panels)
	case R_Simpson:
		R, err = quadrature.Simpson(g.F, mq.A, mq.B, mq.Panels)
	case R_Romberg:
		R, err = quadrature.Romberg(g.F, mq.A, mq.B, mq.Panels)
	case R_Adaptive:
		var A quadrature.AdaptiveResult
		A, err = quadrature.AdaptiveTrapezoid(g.F, mq.A, mq.B, mq.Tol, mq.MaxRefinements)
		if err != nil {
			return fmt.Errorf("adaptive rule on %q: %w", mq.IntegrandName, err)
		}
		logger.Infow("adaptive quadrature",
			"refinements", A.Refinements, "evals", A.Evals, "eta", A.Eta,
			"elapsed", time.Since(start))
		fmt.Printf("Q = %16.12f, h = %10.3e, eta = %10.3e\n", A.Value, A.H, A.Eta)
		value = A.Value
		printTrueError(g, mq, value)
		return
	}
	if err != nil {
		return fmt.Errorf("%s rule on %q: %w", mq.Rule, mq.IntegrandName, err)
	}
	logger.Infow("quadrature",
		"rule", mq.Rule.String(), "n", R.N, "evals", R.Evals,
		"elapsed", time.Since(start))
	fmt.Printf("Q = %16.12f, h = %10.3e\n", R.Value, R.H)
	value = R.Value
	printTrueError(g, mq, value)
	return
}

func printTrueError(g NamedIntegrand, mq *ModelQuad, value float64) {
	if g.Anti == nil {
		return
	}
	exact := g.Anti(mq.B) - g.Anti(mq.A)
	fmt.Printf("exact = %16.12f, error = %10.3e\n", exact, math.Abs(value-exact))
}
