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
	"github.com/notargets/go1d/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// writeSolutionPlot renders the nodal approximation, overlaying the exact
// solution when one is available, to a PNG file.
func writeSolutionPlot(title string, x, u utils.Vector, exact func(float64) float64, fileName string) (err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u"
	p.Add(plotter.NewGrid())

	computed := make(plotter.XYs, x.Len())
	for i := range computed {
		computed[i].X = x.AtVec(i)
		computed[i].Y = u.AtVec(i)
	}
	line, err := plotter.NewLine(computed)
	if err != nil {
		return
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("computed", line)

	if exact != nil {
		ref := make(plotter.XYs, x.Len())
		for i := range ref {
			ref[i].X = x.AtVec(i)
			ref[i].Y = exact(x.AtVec(i))
		}
		var refLine *plotter.Line
		if refLine, err = plotter.NewLine(ref); err != nil {
			return
		}
		refLine.Color = plotutil.Color(1)
		refLine.Dashes = plotutil.Dashes(1)
		p.Add(refLine)
		p.Legend.Add("exact", refLine)
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, fileName)
}
