/*
 * stats.go, part of godipolar.
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

import "math"

//accumulator builds the sample mean and standard deviation of a series from
//running sums, so memory use doesn't depend on the number of frames. The
//standard deviation uses the sum-of-squares form
//sqrt((n*Sx2 - Sx^2)/(n*(n-1))), which is algebraically equal to the
//two-pass sample formula but can differ from it in the last few floating
//point digits. That exact form is kept for compatibility with previously
//published values.
type accumulator struct {
	n    int
	sum  float64
	sum2 float64
}

func (a *accumulator) Add(x float64) {
	a.n++
	a.sum += x
	a.sum2 += x * x
}

func (a *accumulator) Mean() float64 {
	return a.sum / float64(a.n)
}

//Std returns exactly 0 for less than 2 samples, where the sample deviation
//is not defined.
func (a *accumulator) Std() float64 {
	if a.n < 2 {
		return 0
	}
	n := float64(a.n)
	s := (n*a.sum2 - a.sum*a.sum) / (n * (n - 1))
	if s < 0 { //floating point noise on near-constant series
		return 0
	}
	return math.Sqrt(s)
}

//MeanStd returns the mean and sample standard deviation of values, with the
//same conventions as the per-frame aggregation: a single-element series has
//deviation exactly 0. It panics on an empty slice.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		panic("goDipolar: MeanStd called with no values")
	}
	a := new(accumulator)
	for _, v := range values {
		a.Add(v)
	}
	return a.Mean(), a.Std()
}
