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

// Package groth16 implements the Groth16 zk-SNARK over BLS12-381: a
// trusted setup that compiles a qap.Program into a structured reference
// string, a prover that turns a satisfying witness into a three-point
// proof, and a verifier that checks that proof against the public
// inputs with a single pairing product.
package groth16

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Proof is the Groth16 proof triple (pi_A, pi_B, pi_C).
type Proof struct {
	A bls12381.G1Affine
	B bls12381.G2Affine
	C bls12381.G1Affine
}
