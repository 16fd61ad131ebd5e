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

// Package polynomial implements univariate polynomials over the
// BLS12-381 scalar field: construction, evaluation, Lagrange
// interpolation, the ring operations, and exact division.
package polynomial

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ErrZeroDivisor is returned by Divide when the divisor is the zero
// polynomial, regardless of the numerator.
var ErrZeroDivisor = errors.New("polynomial: division by the zero polynomial")

// ErrInexactDivision is returned by Divide when the numerator is not an
// exact multiple of the divisor.
var ErrInexactDivision = errors.New("polynomial: division has a nonzero remainder")

// Polynomial is a coefficient sequence [c_0, c_1, ..., c_d] denoting
// Sum c_i x^i. The zero value is the zero polynomial. Canonical form
// never carries trailing zero coefficients; every constructor and
// operation in this package re-canonicalizes before returning.
type Polynomial struct {
	coeffs []fr.Element
}

// New builds a Polynomial from a coefficient slice, stripping trailing
// zero coefficients. The input slice is not retained.
func New(coeffs []fr.Element) Polynomial {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	out := make([]fr.Element, n)
	copy(out, coeffs[:n])
	return Polynomial{coeffs: out}
}

// Zero is the additive identity.
func Zero() Polynomial {
	return Polynomial{}
}

// Degree is the index of the highest nonzero coefficient, or -1 for the
// zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficients returns the canonical coefficient slice, index i holding
// the coefficient of x^i. The caller must not mutate the result.
func (p Polynomial) Coefficients() []fr.Element {
	return p.coeffs
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
// It is defined only for a nonzero polynomial; callers must check
// IsZero first.
func (p Polynomial) LeadingCoefficient() fr.Element {
	return p.coeffs[len(p.coeffs)-1]
}

// Equal compares two polynomials on their canonical representation.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(&q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Evaluate computes Sum c_i x^i via Horner's method.
func (p Polynomial) Evaluate(x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &p.coeffs[i])
	}
	return res
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]fr.Element, len(p.coeffs))
	for i := range p.coeffs {
		out[i].Neg(&p.coeffs[i])
	}
	return New(out)
}

// Add returns p+q. Adding the zero polynomial returns the other operand
// itself, sharing its coefficient slice.
func (p Polynomial) Add(q Polynomial) Polynomial {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}

	size := len(p.coeffs)
	if len(q.coeffs) > size {
		size = len(q.coeffs)
	}
	out := make([]fr.Element, size)
	for i, c := range p.coeffs {
		out[i].Add(&out[i], &c)
	}
	for i, c := range q.coeffs {
		out[i].Add(&out[i], &c)
	}
	return New(out)
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Mul returns p*q. The product of anything with the zero polynomial is
// the zero polynomial. Multiplications against a zero coefficient are
// skipped as a performance optimization; this does not change the
// result.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}

	out := make([]fr.Element, len(p.coeffs)+len(q.coeffs)-1)
	var term fr.Element
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			term.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return New(out)
}

// Divide computes the quotient q such that numerator = q*divisor
// exactly. It fails with ErrZeroDivisor if divisor is the zero
// polynomial (checked ahead of everything else, regardless of the
// numerator's degree), and with ErrInexactDivision if the remainder of
// the long division is nonzero.
func Divide(numerator, divisor Polynomial) (Polynomial, error) {
	if divisor.IsZero() {
		return Zero(), ErrZeroDivisor
	}
	if numerator.IsZero() || numerator.Degree() < divisor.Degree() {
		if numerator.IsZero() {
			return Zero(), nil
		}
		return Zero(), ErrInexactDivision
	}

	quotientDegree := numerator.Degree() - divisor.Degree()
	quotient := make([]fr.Element, quotientDegree+1)

	var divisorLeadInv fr.Element
	divisorLeadInv.Inverse(ref(divisor.LeadingCoefficient()))

	remainder := numerator
	for step := 0; step <= quotientDegree; step++ {
		if remainder.Degree() < divisor.Degree() {
			break
		}

		var coeff fr.Element
		coeff.Mul(ref(remainder.LeadingCoefficient()), &divisorLeadInv)

		shift := remainder.Degree() - divisor.Degree()
		shiftCoeffs := make([]fr.Element, shift+1)
		shiftCoeffs[shift] = coeff
		subtrahend := New(shiftCoeffs).Mul(divisor)

		quotient[shift] = coeff
		remainder = remainder.Sub(subtrahend)
	}

	if !remainder.IsZero() {
		return Zero(), ErrInexactDivision
	}
	return New(quotient), nil
}

// Interpolate returns the unique polynomial of degree < len(domain)
// passing through (domain[i], values[i]) for every i, using the
// Lagrange formula
//
//	Sum_i values[i] * Prod_{j!=i} (x - domain[j]) / (domain[i] - domain[j])
//
// The caller must ensure len(domain) == len(values) > 0 and that the
// domain points are pairwise distinct; distinctness is what guarantees
// every denominator below is invertible.
func Interpolate(domain, values []fr.Element) Polynomial {
	if len(domain) != len(values) || len(domain) == 0 {
		panic("polynomial: interpolate requires equal, nonempty domain and value slices")
	}

	x := New([]fr.Element{{}, one()})
	acc := Zero()

	for i := range domain {
		term := New([]fr.Element{values[i]})
		for j := range domain {
			if j == i {
				continue
			}

			var denom, denomInv fr.Element
			denom.Sub(&domain[i], &domain[j])
			denomInv.Inverse(&denom)

			var negDomainJ fr.Element
			negDomainJ.Neg(&domain[j])
			linear := x.Add(New([]fr.Element{negDomainJ}))

			term = term.Mul(linear).Mul(New([]fr.Element{denomInv}))
		}
		acc = acc.Add(term)
	}
	return acc
}

func one() fr.Element {
	var z fr.Element
	z.SetOne()
	return z
}

func ref(e fr.Element) *fr.Element {
	return &e
}
