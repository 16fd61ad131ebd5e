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

package groth16

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// fieldBytes is the number of random bytes drawn per scalar: the field
// modulus is 255 bits, so 64 bytes (512 bits) of entropy keeps the bias
// introduced by fr.Element's final modular reduction below 2^-256,
// whereas a naive 32-byte draw, barely wider than the modulus, would
// leave a large bias toward small residues.
const fieldBytes = 64

// sampleScalar draws a uniformly random element of the scalar field
// from r by reading fieldBytes of entropy into a big.Int and reducing
// it mod the field order via SetBigInt. This replaces the reference
// implementation's bounded-by-u64 sampling (see the design notes on
// toxic-waste and blinding-scalar generation) with full-field rejection
// sampling, and takes r as a parameter rather than a global so callers
// can substitute a seeded source in tests.
func sampleScalar(r io.Reader) (fr.Element, error) {
	buf := make([]byte, fieldBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fr.Element{}, err
	}
	var z big.Int
	z.SetBytes(buf)

	var e fr.Element
	e.SetBigInt(&z)
	return e, nil
}

// sampleNonZeroScalar repeats sampleScalar until it draws a nonzero
// element, for the SRS parameters (gamma, delta) whose inverses are
// used during setup.
func sampleNonZeroScalar(r io.Reader) (fr.Element, error) {
	for {
		e, err := sampleScalar(r)
		if err != nil {
			return fr.Element{}, err
		}
		if !e.IsZero() {
			return e, nil
		}
	}
}
