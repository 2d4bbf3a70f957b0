/*
 * dcplot.go, part of godipolar.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package dcplot draws simple plots of dipolar-coupling data, mostly meant
//for a quick look at the output of a pair-list run before any serious
//analysis.
package dcplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//CouplingHisto produces a png histogram of the given couplings (Hz) with
//bins bins, saved as plotname (the .png extension is added here). Returns an
//error or nil.
func CouplingHisto(couplings []float64, bins int, title, plotname string) error {
	if len(couplings) == 0 {
		return fmt.Errorf("goDipolar/dcplot: given no data")
	}
	if bins < 1 {
		bins = 10
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "D (Hz)"
	p.Y.Label.Text = "Pairs"
	p.X.Min = floats.Min(couplings)
	p.X.Max = floats.Max(couplings)
	h, err := plotter.NewHist(plotter.Values(couplings), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	p.Add(plotter.NewGrid())
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename)
}

//DistCoupling produces a png scatter plot of coupling (Hz) against distance
//(Angstrom), saved as plotname (the .png extension is added here). Both
//slices must have the same length. The r^-3 shape of the cloud is a quick
//sanity check for a pair-list run.
func DistCoupling(distances, couplings []float64, title, plotname string) error {
	if len(distances) != len(couplings) {
		return fmt.Errorf("goDipolar/dcplot: distances and couplings differ in length: %d, %d", len(distances), len(couplings))
	}
	if len(distances) == 0 {
		return fmt.Errorf("goDipolar/dcplot: given no data")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "r (A)"
	p.Y.Label.Text = "D (Hz)"
	xy := make(plotter.XYs, len(distances))
	for i, v := range distances {
		xy[i].X = v
		xy[i].Y = couplings[i]
	}
	s, err := plotter.NewScatter(xy)
	if err != nil {
		return err
	}
	p.Add(s)
	p.Add(plotter.NewGrid())
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 9*vg.Centimeter, filename)
}
