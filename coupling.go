/*
 * coupling.go, part of godipolar.
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

//Conversions. Deg2Rad is kept at the precision of the reference data: the
//values near the magic angle are sensitive to the last digit. Rad2Deg is
//exact, so reported angles stay within [0,180].
const (
	Deg2Rad = 0.017453
	Rad2Deg = 180 / math.Pi
	A2M     = 1e-10 //Angstrom to meter
)

//Others
const (
	MagicAngle = 54.74 //degrees. The angular term vanishes here.
)

//Physical constants (SI). Not configurable.
const (
	mu0    = 4 * math.Pi * 1e-7 //vacuum permeability, N A^-2
	planck = 6.62607004e-34     //Planck constant, J s
)

//Coupling returns the magnitude, in Hz, of the dipolar coupling between
//nucleus1 and nucleus2 (gyromagnetic-table symbols) at distance Angstrom
//from each other, with their internuclear vector at angle degrees from the
//external field axis. The sign of the dipolar tensor, and of the
//gyromagnetic ratios, is discarded: only the coupling strength is reported.
//For unoriented/MAS data just pass angle 0.
//Coupling fails with UnknownNucleus if either symbol is not in the table and
//with InvalidGeometry if distance is not a positive, finite number.
func Coupling(distance, angle float64, nucleus1, nucleus2 string) (float64, error) {
	g1, err := Gamma(nucleus1)
	if err != nil {
		return 0, errDecorate(err, "Coupling")
	}
	g2, err := Gamma(nucleus2)
	if err != nil {
		return 0, errDecorate(err, "Coupling")
	}
	if distance <= 0 || math.IsInf(distance, 0) || math.IsNaN(distance) {
		return 0, &InvalidGeometry{Frame: -1, Distance: distance}
	}
	theta := angle * Deg2Rad
	r := distance * A2M
	c := -(mu0 * planck) / (8 * math.Pi * math.Pi * math.Pi)
	d := (g1 * g2) / (r * r * r)
	a := (3*math.Pow(math.Cos(theta), 2) - 1) / 2
	return math.Abs(c * d * a), nil
}
