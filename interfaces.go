/*
 * interfaces.go, part of godipolar.
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

import v3 "github.com/rmera/godipolar/v3"

//The analyses in this package don't read structures or trajectories
//themselves. They drive any provider implementing these 2 small interfaces,
//so the same code works on a PDB-backed molecule, a trajectory reader or a
//viewer plugin. The in-memory Molecule in this package is one implementation.

//System is a structure, possibly with a multi-frame trajectory, from which
//selections can be made.
type System interface {

	//Frames returns the number of frames available, 1 for a static
	//structure.
	Frames() int

	//Len returns the number of atoms in the system.
	Len() int

	//Atom returns the Atom with index i. Should panic if out of range.
	Atom(i int) *Atom

	//Select returns a Selection for the atoms with the given indexes.
	//It fails with EmptySelection if indexes is empty.
	Select(indexes []int) (Selection, error)
}

//Selection is a set of atoms with a frame cursor. The protocol is stateful
//and sequential: SetFrame positions the cursor, and a following Centroid
//reads from that frame. A Selection must not be shared between goroutines;
//independent Selections on the same System may be used concurrently if the
//System allows concurrent reads (the in-memory Molecule does).
type Selection interface {

	//SetFrame positions the frame cursor on frame i.
	SetFrame(i int) error

	//Centroid returns the geometric center of the selected atoms at the
	//current frame, as a fresh 1x3 matrix. For a single-atom selection
	//this is just the atom's position.
	Centroid() (*v3.Matrix, error)

	//Indices returns the indexes of the selected atoms, in order.
	Indices() []int
}
