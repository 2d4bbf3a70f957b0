/*
 * molecule.go, part of godipolar.
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

	v3 "github.com/rmera/godipolar/v3"
)

//Molecule is the in-memory System implementation: a Topology plus one
//coordinate matrix per frame. Whatever reads structure or trajectory files
//is expected to produce one of these (or its own System). Once built, a
//Molecule is only read by the analyses here, so independent Selections on it
//can be used from several goroutines.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

//NewMolecule makes a Molecule from ats and coords. It checks that every
//frame has one coordinate vector per atom.
func NewMolecule(ats []*Atom, coords []*v3.Matrix) (*Molecule, error) {
	top, err := NewTopology(ats)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 {
		return nil, fmt.Errorf("goDipolar: supplied no coordinate frames")
	}
	for i, v := range coords {
		if v.NVecs() != top.Len() {
			return nil, fmt.Errorf("goDipolar: inconsistent coordinates/atoms in frame %d: atoms %d, coords %d", i, top.Len(), v.NVecs())
		}
	}
	return &Molecule{Topology: top, Coords: coords}, nil
}

//Frames returns the number of frames in the molecule.
func (M *Molecule) Frames() int {
	return len(M.Coords)
}

//Select returns a Selection for the atoms with the given indexes.
func (M *Molecule) Select(indexes []int) (Selection, error) {
	if len(indexes) == 0 {
		return nil, &EmptySelection{}
	}
	for _, v := range indexes {
		if v < 0 || v >= M.Len() {
			return nil, fmt.Errorf("goDipolar: selection index %d out of range (%d atoms)", v, M.Len())
		}
	}
	ind := make([]int, len(indexes))
	copy(ind, indexes)
	return &molSelection{m: M, indexes: ind}, nil
}

//molSelection implements Selection on a Molecule. The frame cursor is kept
//here, not in the Molecule, so selections are independent of each other.
type molSelection struct {
	m       *Molecule
	indexes []int
	frame   int
}

func (S *molSelection) SetFrame(i int) error {
	if i < 0 || i >= S.m.Frames() {
		return fmt.Errorf("goDipolar: frame %d out of range (%d frames)", i, S.m.Frames())
	}
	S.frame = i
	return nil
}

func (S *molSelection) Indices() []int {
	ret := make([]int, len(S.indexes))
	copy(ret, S.indexes)
	return ret
}

//Centroid returns the geometric center of the selection at the current
//frame.
func (S *molSelection) Centroid() (*v3.Matrix, error) {
	if len(S.indexes) == 0 {
		//can't happen through Select, but the type can be built in-package
		return nil, &EmptySelection{}
	}
	coords := S.m.Coords[S.frame]
	ret := v3.Zeros(1)
	for _, v := range S.indexes {
		ret.Add(ret, coords.VecView(v))
	}
	ret.Scale(1/float64(len(S.indexes)), ret)
	return ret, nil
}
