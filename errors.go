/*
 * errors.go, part of godipolar.
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

import "fmt"

//Error is the interface for the errors of this library. The Decorate method
//allows adding and retrieving information from the error without changing its
//type or wrapping it. The decoration slice should contain the names of the
//functions in the calling stack plus, for each, any relevant extra
//information in the format "FunctionName: Extra info". Decorate called with
//an empty string only returns the current decoration.
type Error interface {
	error
	Decorate(string) []string
}

//No error here is ever retried or recovered internally: each one aborts the
//operation that raised it and surfaces to the caller.

//UnknownNucleus is returned when a nucleus symbol has no entry in the
//gyromagnetic table. It is raised before any arithmetic is attempted.
type UnknownNucleus struct {
	Symbol string
	deco   []string
}

func (err *UnknownNucleus) Error() string {
	return fmt.Sprintf("goDipolar: no gyromagnetic ratio for nucleus %q (supported: %v)", err.Symbol, Nuclei())
}

//Decorate adds new information to the error.
func (err *UnknownNucleus) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//EmptySelection is returned when a selection matches no atoms. The position
//of zero atoms is undefined, so nothing sensible can be measured on it.
type EmptySelection struct {
	deco []string
}

func (err *EmptySelection) Error() string {
	return "goDipolar: selection matches no atoms"
}

//Decorate adds new information to the error.
func (err *EmptySelection) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//InvalidGeometry is returned when a measured geometry is degenerate, i.e.
//the internuclear distance is zero or not finite. Both the r^-3 term and the
//angle are undefined in that case, so the error is raised whether or not the
//angular term is in use, instead of letting a NaN propagate.
type InvalidGeometry struct {
	Frame    int //frame where the degenerate geometry was found, -1 if not frame-related
	Distance float64
	deco     []string
}

func (err *InvalidGeometry) Error() string {
	if err.Frame >= 0 {
		return fmt.Sprintf("goDipolar: degenerate internuclear distance %v in frame %d", err.Distance, err.Frame)
	}
	return fmt.Sprintf("goDipolar: degenerate internuclear distance %v", err.Distance)
}

//Decorate adds new information to the error.
func (err *InvalidGeometry) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//OutputWrite is returned when the output file for a pair list cannot be
//created or written. PairList raises it before sampling any pair, so a bad
//destination doesn't waste a trajectory scan.
type OutputWrite struct {
	FileName string
	Err      error
	deco     []string
}

func (err *OutputWrite) Error() string {
	return fmt.Sprintf("goDipolar: output file %s: %v", err.FileName, err.Err)
}

func (err *OutputWrite) Unwrap() error {
	return err.Err
}

//Decorate adds new information to the error.
func (err *OutputWrite) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Used with any other error, it just
//returns the error unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
