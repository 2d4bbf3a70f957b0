/*
 * stats_test.go, part of godipolar.
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

package dipolar

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestMeanStd(Te *testing.T) {
	m, s := MeanStd([]float64{1, 2, 3})
	if m != 2 || s != 1 {
		Te.Errorf("MeanStd([1,2,3]) = %v, %v, want 2, 1", m, s)
	}
	//a single sample has deviation exactly 0, not NaN
	for _, x := range []float64{0, -4.25, 1e9} {
		m, s = MeanStd([]float64{x})
		if m != x || s != 0 {
			Te.Errorf("MeanStd([%v]) = %v, %v, want %v, 0", x, m, s, x)
		}
	}
	m, s = MeanStd([]float64{2.0, 3.0})
	if m != 2.5 {
		Te.Errorf("wrong mean %v", m)
	}
	if math.Abs(s-0.7071067811865476) > 1e-12 {
		Te.Errorf("wrong std %v", s)
	}
}

//The sum-of-squares form is algebraically equal to the two-pass sample
//standard deviation, but not bit-for-bit equal. Check against gonum's
//two-pass implementation at a loose-ish tolerance.
func TestMeanStdVsGonum(Te *testing.T) {
	series := [][]float64{
		{2.0, 3.0},
		{1.04, 1.05, 1.02, 1.04, 1.03},
		{21647.697, 10823.848, 5508.304, 212.599},
		{89.9, 90.0, 90.1, 90.05, 89.95, 90.2},
	}
	for _, v := range series {
		m, s := MeanStd(v)
		gm := stat.Mean(v, nil)
		gs := stat.StdDev(v, nil)
		if math.Abs(m-gm) > 1e-10 {
			Te.Errorf("mean %v differs from gonum's %v", m, gm)
		}
		if math.Abs(s-gs) > 1e-8*math.Max(1, gs) {
			Te.Errorf("std %v differs from gonum's %v", s, gs)
		}
	}
}

//A near-constant series must not produce NaN from floating point noise in
//the radicand.
func TestStdNoNaN(Te *testing.T) {
	a := new(accumulator)
	for i := 0; i < 1000; i++ {
		a.Add(1e8 + 1e-7)
	}
	if s := a.Std(); math.IsNaN(s) {
		Te.Error("NaN deviation for a constant series")
	}
}
