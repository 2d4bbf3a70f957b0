/*
 * pair_test.go, part of godipolar.
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
	"errors"
	"fmt"
	"math"
	"testing"

	v3 "github.com/rmera/godipolar/v3"
)

//Atom 0 is fixed at the origin; atom 1 sits on the Z axis, 2 A away in the
//first frame and 3 A away in the second. The averages over the 2 frames are
//known exactly.
func TestPairTwoFrames(Te *testing.T) {
	mol := testMolecule(Te)
	sel1, err := mol.Select([]int{0})
	if err != nil {
		Te.Fatal(err)
	}
	sel2, err := mol.Select([]int{1})
	if err != nil {
		Te.Fatal(err)
	}
	res, err := Pair(mol, sel1, sel2, "1H", "15N", false)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("H-N pair:", res)
	if res.Dist != 2.5 {
		Te.Errorf("distance mean %v, want 2.5", res.Dist)
	}
	if math.Abs(res.DistDev-0.7071067811865476) > 1e-12 {
		Te.Errorf("distance std %v, want 0.70710678...", res.DistDev)
	}
	//both frames lie exactly on the Z axis
	if res.Angle != 0 || res.AngleDev != 0 {
		Te.Errorf("angle %v+-%v, want exactly 0+-0", res.Angle, res.AngleDev)
	}
	c2, _ := Coupling(2.0, 0, "1H", "15N")
	c3, _ := Coupling(3.0, 0, "1H", "15N")
	if want := (c2 + c3) / 2; math.Abs(res.Coupling-want) > 1e-9 {
		Te.Errorf("coupling mean %v, want %v", res.Coupling, want)
	}
	cm, _ := Coupling(2.5, 0, "1H", "15N")
	if math.Abs(res.CouplingFromMeans-cm) > 1e-9 {
		Te.Errorf("coupling from means %v, want %v", res.CouplingFromMeans, cm)
	}
	//r^-3 averaging: the two estimates must NOT agree for a mobile pair
	if res.Coupling <= res.CouplingFromMeans {
		Te.Errorf("averaged coupling %v should exceed from-means %v for this geometry", res.Coupling, res.CouplingFromMeans)
	}
}

func TestPairAngle(Te *testing.T) {
	mol := testMolecule(Te)
	sel1, _ := mol.Select([]int{0})
	sel2, _ := mol.Select([]int{2}) //on the X axis, both frames
	res, err := Pair(mol, sel1, sel2, "1H", "13C", false)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("H-C pair:", res)
	if math.Abs(res.Angle-90.0) > 1e-9 || res.AngleDev != 0 {
		Te.Errorf("angle %v+-%v, want 90+-0", res.Angle, res.AngleDev)
	}
	if res.Dist != 2.0 || res.DistDev != 0 {
		Te.Errorf("distance %v+-%v, want 2+-0", res.Dist, res.DistDev)
	}
	//a static pair: the two coupling estimates agree
	if math.Abs(res.Coupling-res.CouplingFromMeans) > 1e-9 {
		Te.Errorf("static pair but coupling %v != from-means %v", res.Coupling, res.CouplingFromMeans)
	}
}

//With noangle the angular term is dropped in every frame: angles are exactly
//0 and the from-means estimate is the 0-angle coupling of the mean distance.
//A pair pointing along -Z must report exactly 180 degrees; the reported
//angle never leaves [0,180].
func TestPairAntiParallel(Te *testing.T) {
	ats := []*Atom{{Name: "H1"}, {Name: "H2"}}
	f, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, -2})
	mol, err := NewMolecule(ats, []*v3.Matrix{f})
	if err != nil {
		Te.Fatal(err)
	}
	sel1, _ := mol.Select([]int{0})
	sel2, _ := mol.Select([]int{1})
	res, err := Pair(mol, sel1, sel2, "1H", "1H", false)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(res.Angle-180.0) > 1e-9 {
		Te.Errorf("angle %v, want 180", res.Angle)
	}
	if res.Angle < 0 || res.Angle > 180 {
		Te.Errorf("angle %v outside [0,180]", res.Angle)
	}
	//the angular term at 180 equals the one at 0
	c0, _ := Coupling(2.0, 0.0, "1H", "1H")
	if math.Abs(res.Coupling-c0) > 1e-3 {
		Te.Errorf("coupling %v at 180 deg, want %v as at 0 deg", res.Coupling, c0)
	}
}

func TestPairNoAngle(Te *testing.T) {
	mol := testMolecule(Te)
	sel1, _ := mol.Select([]int{0})
	sel2, _ := mol.Select([]int{2})
	res, err := Pair(mol, sel1, sel2, "1H", "13C", true)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Angle != 0 || res.AngleDev != 0 {
		Te.Errorf("noangle but angle %v+-%v", res.Angle, res.AngleDev)
	}
	cm, _ := Coupling(res.Dist, 0.0, "1H", "13C")
	if res.CouplingFromMeans != cm {
		Te.Errorf("coupling from means %v, want %v", res.CouplingFromMeans, cm)
	}
}

func TestPairDegenerate(Te *testing.T) {
	ats := []*Atom{{Name: "H1"}, {Name: "H2"}}
	f, _ := v3.NewMatrix([]float64{1, 1, 1, 1, 1, 1}) //same position
	mol, err := NewMolecule(ats, []*v3.Matrix{f})
	if err != nil {
		Te.Fatal(err)
	}
	sel1, _ := mol.Select([]int{0})
	sel2, _ := mol.Select([]int{1})
	_, err = Pair(mol, sel1, sel2, "1H", "1H", false)
	var geo *InvalidGeometry
	if !errors.As(err, &geo) {
		Te.Fatalf("expected InvalidGeometry, got %T: %v", err, err)
	}
	if geo.Frame != 0 {
		Te.Errorf("wrong frame in error: %d", geo.Frame)
	}
}

/*A hand-rolled System/Selection, to check that the analyses only rely on
the declared collaborator protocol. It also counts SetFrame calls, so we
can verify the set-frame-then-read discipline and that bad nuclei fail
before any frame is touched.*/

type fakeSystem struct {
	atoms    []*Atom
	coords   [][][3]float64 //frame, atom, xyz
	setCalls int
}

func (F *fakeSystem) Frames() int      { return len(F.coords) }
func (F *fakeSystem) Len() int         { return len(F.atoms) }
func (F *fakeSystem) Atom(i int) *Atom { return F.atoms[i] }

func (F *fakeSystem) Select(indexes []int) (Selection, error) {
	if len(indexes) == 0 {
		return nil, &EmptySelection{}
	}
	return &fakeSel{s: F, indexes: indexes}, nil
}

type fakeSel struct {
	s       *fakeSystem
	indexes []int
	frame   int
}

func (S *fakeSel) SetFrame(i int) error {
	if i < 0 || i >= S.s.Frames() {
		return fmt.Errorf("fake: bad frame %d", i)
	}
	S.s.setCalls++
	S.frame = i
	return nil
}

func (S *fakeSel) Indices() []int { return S.indexes }

func (S *fakeSel) Centroid() (*v3.Matrix, error) {
	ret := v3.Zeros(1)
	for _, v := range S.indexes {
		c := S.s.coords[S.frame][v]
		ret.Set(0, 0, ret.At(0, 0)+c[0])
		ret.Set(0, 1, ret.At(0, 1)+c[1])
		ret.Set(0, 2, ret.At(0, 2)+c[2])
	}
	ret.Scale(1/float64(len(S.indexes)), ret)
	return ret, nil
}

func TestPairFakeProvider(Te *testing.T) {
	fake := &fakeSystem{
		atoms: []*Atom{{Name: "H"}, {Name: "F"}},
		coords: [][][3]float64{
			{{0, 0, 0}, {0, 0, 2}},
			{{0, 0, 0}, {0, 0, 3}},
		},
	}
	sel1, _ := fake.Select([]int{0})
	sel2, _ := fake.Select([]int{1})
	res, err := Pair(fake, sel1, sel2, "1H", "19F", false)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Dist != 2.5 {
		Te.Errorf("distance mean %v through the fake, want 2.5", res.Dist)
	}
	if fake.setCalls != 4 { //2 selections x 2 frames
		Te.Errorf("expected 4 SetFrame calls, got %d", fake.setCalls)
	}
	//an unknown nucleus must fail before the trajectory is touched
	fake.setCalls = 0
	_, err = Pair(fake, sel1, sel2, "1H", "57Fe", false)
	var unk *UnknownNucleus
	if !errors.As(err, &unk) {
		Te.Fatalf("expected UnknownNucleus, got %v", err)
	}
	if fake.setCalls != 0 {
		Te.Errorf("frames were touched (%d SetFrame calls) before nucleus validation", fake.setCalls)
	}
}
