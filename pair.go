/*
 * pair.go, part of godipolar.
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
	"fmt"
	"math"

	v3 "github.com/rmera/godipolar/v3"
)

//PairResult contains the trajectory-averaged measurements for one pair of
//selections: means and sample standard deviations of the internuclear
//distance (Angstrom), of the angle with the Z axis (degrees) and of the
//per-frame coupling (Hz), plus CouplingFromMeans, the coupling recomputed
//from the averaged distance and angle. Coupling and CouplingFromMeans answer
//different questions: the coupling-distance relation goes with r^-3, so for
//a mobile pair the average of the couplings is not the coupling of the
//average geometry. Report both; their divergence measures the mobility.
type PairResult struct {
	Dist        float64
	DistDev     float64
	Angle       float64
	AngleDev    float64
	Coupling    float64
	CouplingDev float64
	//the coupling obtained from Dist and Angle, rather than by averaging
	//the per-frame couplings.
	CouplingFromMeans float64
}

func (R *PairResult) String() string {
	return fmt.Sprintf("D: %.2f+-%.2f A, angle: %.1f+-%.1f deg, DC: %.1f+-%.1f Hz, DC(from means): %.1f Hz",
		R.Dist, R.DistDev, R.Angle, R.AngleDev, R.Coupling, R.CouplingDev, R.CouplingFromMeans)
}

//Pair measures sel1 and sel2 (nuclei nucleus1 and nucleus2) over every frame
//of sys and returns the aggregated PairResult. Per frame, both selection
//cursors are positioned, the centroids are read, and distance, angle and
//coupling are accumulated; the angle is the one between the internuclear
//vector (centroid2 - centroid1) and the Z axis, which is only meaningful for
//structures previously oriented along Z. With noangle (e.g. for MAS data)
//the angle is taken as 0 on every frame, so the returned angle mean and
//deviation are exactly 0 too.
//With a single frame, all deviations are exactly 0.
func Pair(sys System, sel1, sel2 Selection, nucleus1, nucleus2 string, noangle bool) (*PairResult, error) {
	//nuclei are validated before touching any frame.
	if _, err := Gamma(nucleus1); err != nil {
		return nil, errDecorate(err, "Pair")
	}
	if _, err := Gamma(nucleus2); err != nil {
		return nil, errDecorate(err, "Pair")
	}
	frames := sys.Frames()
	if frames < 1 {
		return nil, fmt.Errorf("goDipolar: Pair: system has no frames")
	}
	var dist, ang, coup accumulator
	diff := v3.Zeros(1)
	for i := 0; i < frames; i++ {
		if err := sel1.SetFrame(i); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Pair: frame %d", i))
		}
		if err := sel2.SetFrame(i); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Pair: frame %d", i))
		}
		p1, err := sel1.Centroid()
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Pair: frame %d", i))
		}
		p2, err := sel2.Centroid()
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Pair: frame %d", i))
		}
		diff.Sub(p2, p1)
		r := diff.Norm()
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, &InvalidGeometry{Frame: i, Distance: r}
		}
		angle := 0.0
		if !noangle {
			arg := diff.At(0, 2) / r
			//take care of floating point math errors
			if arg > 1 {
				arg = 1
			} else if arg < -1 {
				arg = -1
			}
			angle = math.Acos(arg) * Rad2Deg
		}
		dc, err := Coupling(r, angle, nucleus1, nucleus2)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Pair: frame %d", i))
		}
		dist.Add(r)
		ang.Add(angle)
		coup.Add(dc)
	}
	ret := &PairResult{
		Dist:        dist.Mean(),
		DistDev:     dist.Std(),
		Angle:       ang.Mean(),
		AngleDev:    ang.Std(),
		Coupling:    coup.Mean(),
		CouplingDev: coup.Std(),
	}
	var err error
	ret.CouplingFromMeans, err = Coupling(ret.Dist, ret.Angle, nucleus1, nucleus2)
	if err != nil {
		return nil, errDecorate(err, "Pair")
	}
	return ret, nil
}
