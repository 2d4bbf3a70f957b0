/*
 * v3.go, part of godipolar.
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

//Package v3 implements a Matrix type for Nx3 row-major matrices, used to
//represent the cartesian coordinates of sets of atoms. It is a thin layer
//over gonum's Dense type, restricted to 3 columns, with the few extra
//operations needed for coordinate work.
package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space. Within the package it
//is understood that a "vector" is a row of the matrix, i.e. the
//cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NewMatrix builds a Matrix from data, which must have a length
//divisible by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols = 3
	if len(data)%cols != 0 {
		return nil, Error(fmt.Sprintf("goDipolar/v3: input slice length %d not divisible by %d", len(data), cols))
	}
	return &Matrix{mat.NewDense(len(data)/cols, cols, data)}, nil
}

//Dense2Matrix wraps a gonum Dense into a Matrix. The Dense must have 3
//columns, or the function panics.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return &Matrix{A}
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return r
}

//VecView returns a view of the ith vector of F. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//SomeVecs puts in F the vectors of A whose indexes are given in clist,
//in the order of clist. F must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if fr != len(clist) || ar < len(clist) {
		panic(mat.ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < 3; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//Sub puts A-B in the receiver.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Add puts A+B in the receiver.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Scale puts A scaled by v in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//AddVec adds the vector vec to each vector of A, putting the result
//in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, _ := A.Dims()
	if vec.NVecs() != 1 {
		panic(mat.ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//Norm returns the Euclidean norm of F, which must be a single vector.
func (F *Matrix) Norm() float64 {
	if F.NVecs() != 1 {
		panic(not1Vector)
	}
	x, y, z := F.At(0, 0), F.At(0, 1), F.At(0, 2)
	return math.Sqrt(x*x + y*y + z*z)
}

//Dot returns the dot product between F and B, both of which must be
//single vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(not1Vector)
	}
	var ret float64
	for i := 0; i < 3; i++ {
		ret += F.At(0, i) * B.At(0, i)
	}
	return ret
}

//Cross puts the cross product of A and B in the receiver. All three
//must be single vectors.
func (F *Matrix) Cross(A, B *Matrix) {
	if F.NVecs() != 1 || A.NVecs() != 1 || B.NVecs() != 1 {
		panic(not1Vector)
	}
	a1, a2, a3 := A.At(0, 0), A.At(0, 1), A.At(0, 2)
	b1, b2, b3 := B.At(0, 0), B.At(0, 1), B.At(0, 2)
	F.Set(0, 0, a2*b3-a3*b2)
	F.Set(0, 1, a3*b1-a1*b3)
	F.Set(0, 2, a1*b2-a2*b1)
}

//String returns a neat string representation of F.
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return "\n[" + strings.Join(v, "\n") + " ]"
}

//Error is the type for the errors of the package.
type Error string

func (err Error) Error() string {
	return string(err)
}

const (
	not3xXMatrix = Error("goDipolar/v3: Matrix must have 3 columns")
	not1Vector   = Error("goDipolar/v3: Matrix must contain a single vector")
)
