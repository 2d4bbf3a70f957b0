/*
 * nuclei.go, part of godipolar.
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

import "sort"

//A map for assigning gyromagnetic ratios (rad s^-1 T^-1) to NMR-active
//nuclei. The ratios are signed (15N precesses "the other way").
//Note that just the nuclei common in biomolecular ssNMR are present.
var gyromagnetic = map[string]float64{
	"1H":  267.522e6,
	"13C": 67.283e6,
	"15N": -27.116e6,
	"19F": 251.662e6,
	"31P": 108.394e6,
}

//Gamma returns the gyromagnetic ratio, in rad s^-1 T^-1, for the nucleus
//with the given symbol ("1H", "13C", "15N", "19F" or "31P"). The symbol is
//checked against the table before anything else is done with it, so an
//unsupported nucleus always fails loudly, never as a silent NaN downstream.
func Gamma(symbol string) (float64, error) {
	g, ok := gyromagnetic[symbol]
	if !ok {
		return 0, &UnknownNucleus{Symbol: symbol}
	}
	return g, nil
}

//Nuclei returns the symbols of the supported nuclei, sorted alphabetically.
func Nuclei() []string {
	ret := make([]string, 0, len(gyromagnetic))
	for k := range gyromagnetic {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
