/*
 * atom.go, part of godipolar.
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

/**Note: some functions here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong in them the program is
 * most likely wrong anyway and should crash. The panics are related to using
 * a function on a nil object or accessing out-of-bounds fields**/

//Atom contains the topology data for one atom: everything except the
//coordinates, which live in per-frame matrices.
type Atom struct {
	Name    string //PDB-style atom name, e.g. "HN", "CA"
	Id      int
	Molname string //residue name, e.g. "ALA"
	Molid   int    //residue number
	Chain   string
	Symbol  string
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("goDipolar: attempted to copy a nil Atom")
	}
	at := new(Atom)
	*at = *A
	return at
}

//Tag returns the "RESNAME-RESID-NAME" descriptor used to identify the atom
//in pair-list reports.
func (A *Atom) Tag() string {
	return fmt.Sprintf("%s-%d-%s", A.Molname, A.Molid, A.Name)
}

/*****Topology type***/

//Topology contains the information about a molecule that is not expected to
//change in time, i.e. everything except coordinates.
type Topology struct {
	Atoms []*Atom
}

//NewTopology makes a Topology from ats. It fails if ats is nil.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, fmt.Errorf("goDipolar: supplied a nil atom slice")
	}
	return &Topology{Atoms: ats}, nil
}

//Atom returns the Atom corresponding to the index i. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= T.Len() {
		panic("goDipolar: requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}
