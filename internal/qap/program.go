// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package qap compiles an R1CS, given as three matrices of signed
// integers, into a Quadratic Arithmetic Program: one Lagrange-interpolated
// polynomial per witness column per matrix, plus the target (vanishing)
// polynomial of the constraint domain.
package qap

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ali-rezai/groth16-go/internal/fieldutil"
	"github.com/ali-rezai/groth16-go/internal/polynomial"
)

// ErrShapeMismatch is returned by NewProgram when the L, R, O matrices
// are empty or not all of the same m x n shape.
var ErrShapeMismatch = errors.New("qap: L, R, O matrices must be nonempty and share a common shape")

// Program is the compiled form of an R1CS: for every witness column j,
// the Lagrange interpolant of that column of L, R and O over the
// constraint domain {1, ..., m}, plus the target polynomial t(x) =
// Prod_{i=1}^{m} (x - i).
//
// A Program is immutable after construction and safe to share across
// goroutines.
type Program struct {
	NumConstraints int // m
	NumWitness     int // n
	Public         int // l, size of the public witness prefix

	A []polynomial.Polynomial // A_0 .. A_{n-1}, from L
	B []polynomial.Polynomial // B_0 .. B_{n-1}, from R
	C []polynomial.Polynomial // C_0 .. C_{n-1}, from O

	T polynomial.Polynomial // target polynomial, degree m
}

// NewProgram validates and compiles the R1CS matrices L, R, O (each a
// slice of m rows of n signed-integer entries, the constant-1 slot at
// column 0) with a public-witness prefix length of public (0 <= public
// <= n). It fails with ErrShapeMismatch if the matrices are empty or
// not rectangular with a common shape.
func NewProgram(left, right, output [][]int64, public int) (*Program, error) {
	m := len(left)
	if m == 0 || len(left[0]) == 0 || len(right) != m || len(output) != m {
		return nil, ErrShapeMismatch
	}
	n := len(left[0])
	for i := 0; i < m; i++ {
		if len(left[i]) != n || len(right[i]) != n || len(output[i]) != n {
			return nil, ErrShapeMismatch
		}
	}
	if public < 0 || public > n {
		return nil, ErrShapeMismatch
	}

	domain := make([]fr.Element, m)
	for i := 0; i < m; i++ {
		domain[i].SetUint64(uint64(i + 1))
	}

	a := make([]polynomial.Polynomial, n)
	b := make([]polynomial.Polynomial, n)
	c := make([]polynomial.Polynomial, n)

	column := make([]fr.Element, m)
	for j := 0; j < n; j++ {
		fillColumn(column, left, j)
		a[j] = polynomial.Interpolate(domain, column)

		fillColumn(column, right, j)
		b[j] = polynomial.Interpolate(domain, column)

		fillColumn(column, output, j)
		c[j] = polynomial.Interpolate(domain, column)
	}

	return &Program{
		NumConstraints: m,
		NumWitness:     n,
		Public:         public,
		A:              a,
		B:              b,
		C:              c,
		T:              vanishingPolynomial(m),
	}, nil
}

// fillColumn overwrites dst in place with the scalar coercion of column
// j of matrix, one entry per row. It is reused across the three
// matrices and every column to avoid an allocation per interpolation.
func fillColumn(dst []fr.Element, matrix [][]int64, j int) {
	for i, row := range matrix {
		dst[i] = fieldutil.FromInt64(row[j])
	}
}

// vanishingPolynomial returns t(x) = (x-1)(x-2)...(x-m), the unique
// monic degree-m polynomial vanishing on {1, ..., m}.
func vanishingPolynomial(m int) polynomial.Polynomial {
	var one fr.Element
	one.SetOne()
	t := polynomial.New([]fr.Element{one})

	for i := 1; i <= m; i++ {
		var negI fr.Element
		negI.SetUint64(uint64(i))
		negI.Neg(&negI)
		factor := polynomial.New([]fr.Element{negI, one})
		t = t.Mul(factor)
	}
	return t
}

// String renders the program shape for logging/debugging.
func (p *Program) String() string {
	return fmt.Sprintf("qap.Program{m=%d, n=%d, public=%d}", p.NumConstraints, p.NumWitness, p.Public)
}
