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
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/notargets/go1d/FD1D"
	"github.com/notargets/go1d/FEM1D"
	"github.com/notargets/go1d/InputParameters"
	"github.com/notargets/go1d/utils"
	"github.com/spf13/cobra"
)

type ModelType1D uint8

const (
	M_FiniteDifference ModelType1D = iota
	M_Galerkin
)

func (m ModelType1D) String() string {
	switch m {
	case M_FiniteDifference:
		return "FiniteDifference"
	case M_Galerkin:
		return "Galerkin"
	}
	return "Invalid"
}

type ModelBVP struct {
	Model        ModelType1D
	N            int
	Length       float64
	B0, BL       float64
	Conductivity float64
	SourceName   string
	StudyLevels  int
	CSVFile      string
	PlotFile     string
	Title        string
}

// BVPCmd represents the bvp command
var BVPCmd = &cobra.Command{
	Use:   "bvp",
	Short: "One dimensional Dirichlet boundary value problem solutions",
	Long: `
Solves -u'' = f(x) on (0,L) with prescribed boundary values, either by
second-order finite differences or by the piecewise-linear Galerkin
projection (zero boundary values only),

go1d bvp -m 0 -n 100 -s sin --length 6.2832 --b0 1 --bL 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			mb ModelBVP
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
			mb = bvpFromParameters(&ip)
		}
		mr, _ := cmd.Flags().GetInt("model")
		if cmd.Flags().Changed("model") || len(ip.Model) == 0 {
			mb.Model = ModelType1D(mr)
		}
		overrideInt(cmd, "n", &mb.N)
		overrideFloat(cmd, "length", &mb.Length)
		overrideFloat(cmd, "b0", &mb.B0)
		overrideFloat(cmd, "bL", &mb.BL)
		overrideFloat(cmd, "conductivity", &mb.Conductivity)
		overrideString(cmd, "source", &mb.SourceName)
		overrideInt(cmd, "study", &mb.StudyLevels)
		mb.CSVFile, _ = cmd.Flags().GetString("csvFile")
		mb.PlotFile, _ = cmd.Flags().GetString("plotFile")
		if len(mb.Title) == 0 {
			mb.Title = fmt.Sprintf("%s-%s", mb.Model, mb.SourceName)
		}
		return RunBVP(&mb)
	},
}

func init() {
	rootCmd.AddCommand(BVPCmd)
	BVPCmd.Flags().IntP("model", "m", int(M_FiniteDifference), "model to run: 0 = FiniteDifference, 1 = Galerkin")
	BVPCmd.Flags().IntP("n", "n", 100, "interior node count (FD) or segment count (Galerkin)")
	BVPCmd.Flags().Float64("length", 2*math.Pi, "domain length L")
	BVPCmd.Flags().Float64("b0", 0, "Dirichlet value at x = 0 (FD only)")
	BVPCmd.Flags().Float64("bL", 0, "Dirichlet value at x = L (FD only)")
	BVPCmd.Flags().Float64P("conductivity", "k", 1, "conductivity constant (Galerkin only)")
	BVPCmd.Flags().StringP("source", "s", "sin", fmt.Sprintf("source function, one of %v", sourceNames()))
	BVPCmd.Flags().Int("study", 0, "run a convergence study over this many node doublings")
	BVPCmd.Flags().StringP("inputFile", "F", "", "YAML problem description file")
	BVPCmd.Flags().String("csvFile", "", "write convergence study rows to this CSV file")
	BVPCmd.Flags().String("plotFile", "", "write a PNG of the solution to this file")
}

func bvpFromParameters(ip *InputParameters.InputParameters1D) (mb ModelBVP) {
	mb = ModelBVP{
		N:            ip.Nodes,
		Length:       ip.Length,
		B0:           ip.LeftBC,
		BL:           ip.RightBC,
		Conductivity: ip.Conductivity,
		SourceName:   ip.Source,
		StudyLevels:  ip.StudyLevels,
		Title:        ip.Title,
	}
	if strings.EqualFold(ip.Model, "Galerkin") {
		mb.Model = M_Galerkin
	}
	return
}

func RunBVP(mb *ModelBVP) (err error) {
	src, err := lookupSource(mb.SourceName)
	if err != nil {
		return
	}
	var exact func(float64) float64
	switch mb.Model {
	case M_FiniteDifference:
		exact = src.Exact(mb.Length, mb.B0, mb.BL)
	case M_Galerkin:
		// zero Dirichlet boundaries; the conductivity scales the solution
		if e := src.Exact(mb.Length, 0, 0); e != nil {
			k := mb.Conductivity
			exact = func(x float64) float64 { return e(x) / k }
		}
	default:
		return fmt.Errorf("unknown model %d", mb.Model)
	}

	if mb.StudyLevels > 0 {
		return runBVPStudy(mb, exact)
	}

	start := time.Now()
	var (
		x, u utils.Vector
		h    float64
	)
	switch mb.Model {
	case M_FiniteDifference:
		var p *FD1D.Poisson
		if p, err = FD1D.NewPoisson(src.F, mb.Length, mb.B0, mb.BL, mb.N); err != nil {
			return
		}
		var sol *FD1D.Solution
		if sol, err = p.Solve(); err != nil {
			return
		}
		x, u = p.Full(sol)
		h = sol.H
		logger.Infow("finite difference solve",
			"N", mb.N, "h", sol.H, "condEst", sol.CondEst,
			"elapsed", time.Since(start))
	case M_Galerkin:
		var g *FEM1D.Galerkin
		if g, err = FEM1D.NewGalerkin(src.F, mb.Conductivity, mb.Length, mb.N); err != nil {
			return
		}
		var sol *FEM1D.Solution
		if sol, err = g.Solve(); err != nil {
			return
		}
		x, u = g.Full(sol)
		h = sol.H
		logger.Infow("Galerkin solve",
			"n", mb.N, "h", sol.H, "residual", sol.Residual,
			"elapsed", time.Since(start))
	}
	fmt.Printf("h = %8.5f, umin = %8.5f, umax = %8.5f\n", h, u.Min(), u.Max())
	if exact != nil {
		e := x.Copy().Apply(exact).Subtract(u)
		fmt.Printf("max nodal error = %10.3e\n", e.MaxAbs())
	}
	if len(mb.PlotFile) != 0 {
		if err = writeSolutionPlot(mb.Title, x, u, exact, mb.PlotFile); err != nil {
			return
		}
		fmt.Printf("wrote %s\n", mb.PlotFile)
	}
	return
}

func runBVPStudy(mb *ModelBVP, exact func(float64) float64) (err error) {
	if exact == nil {
		return fmt.Errorf("no exact solution is registered for source %q, cannot run a study", mb.SourceName)
	}
	type point struct {
		n      int
		h, err float64
	}
	var pts []point
	switch mb.Model {
	case M_FiniteDifference:
		p, e := FD1D.NewPoisson(sources[mb.SourceName].F, mb.Length, mb.B0, mb.BL, mb.N)
		if e != nil {
			return e
		}
		rows, e := p.RunStudy(exact, mb.StudyLevels)
		if e != nil {
			return e
		}
		for _, r := range rows {
			pts = append(pts, point{r.N, r.H, r.MaxErr})
		}
	case M_Galerkin:
		g, e := FEM1D.NewGalerkin(sources[mb.SourceName].F, mb.Conductivity, mb.Length, mb.N)
		if e != nil {
			return e
		}
		rows, e := g.RunStudy(exact, mb.StudyLevels)
		if e != nil {
			return e
		}
		for _, r := range rows {
			pts = append(pts, point{r.N, r.H, r.MaxErr})
		}
	}
	var w *csv.Writer
	if len(mb.CSVFile) != 0 {
		f, e := os.Create(mb.CSVFile)
		if e != nil {
			return e
		}
		defer f.Close()
		w = csv.NewWriter(f)
		defer w.Flush()
	}
	for i, pt := range pts {
		fmt.Printf("n = %6d, h = %10.3e, maxErr = %10.3e", pt.n, pt.h, pt.err)
		if i > 0 {
			order := math.Log2(pts[i-1].err / pt.err)
			fmt.Printf(", observed order = %5.2f", order)
		}
		fmt.Printf("\n")
		if w != nil {
			_ = w.Write([]string{
				mb.Title,
				strconv.Itoa(pt.n),
				strconv.FormatFloat(pt.h, 'e', 8, 64),
				strconv.FormatFloat(pt.err, 'e', 8, 64),
			})
		}
	}
	return
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if v, _ := cmd.Flags().GetInt(name); cmd.Flags().Changed(name) || *dst == 0 {
		*dst = v
	}
}

func overrideFloat(cmd *cobra.Command, name string, dst *float64) {
	if v, _ := cmd.Flags().GetFloat64(name); cmd.Flags().Changed(name) || *dst == 0 {
		*dst = v
	}
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if v, _ := cmd.Flags().GetString(name); cmd.Flags().Changed(name) || len(*dst) == 0 {
		*dst = v
	}
}
