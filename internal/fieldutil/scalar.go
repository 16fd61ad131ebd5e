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

// Package fieldutil coerces the signed integers used to describe R1CS
// matrices and witnesses into elements of the BLS12-381 scalar field.
package fieldutil

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// FromInt64 maps a signed integer to a scalar field element: nonnegative
// values map directly, strictly negative values map to the negation of
// their magnitude. math.MinInt64 is handled correctly because the
// magnitude is computed in big.Int, which does not overflow.
func FromInt64(v int64) fr.Element {
	var z fr.Element
	if v >= 0 {
		z.SetUint64(uint64(v))
		return z
	}

	// -v overflows int64 when v == math.MinInt64; widen first.
	magnitude := new(big.Int).Neg(big.NewInt(v))
	z.SetBigInt(magnitude)
	z.Neg(&z)
	return z
}

// FromInt64Slice maps a row or witness vector of signed integers to
// scalars, preserving order.
func FromInt64Slice(values []int64) []fr.Element {
	out := make([]fr.Element, len(values))
	for i, v := range values {
		out[i] = FromInt64(v)
	}
	return out
}
