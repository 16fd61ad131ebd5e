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

import "errors"

// Sentinel errors, one per row of the error taxonomy: ShapeMismatch is
// raised by Program construction (see package qap); the remaining four
// are raised by this package. Callers compare with errors.Is.
var (
	// ErrWitnessShape is returned by Prove when the witness length does
	// not equal the program's witness width n.
	ErrWitnessShape = errors.New("groth16: witness length does not match program width")

	// ErrBadWitness is returned by Prove when the witness does not
	// satisfy the R1CS: the QAP polynomial division (A*B-C)/t leaves a
	// nonzero remainder.
	ErrBadWitness = errors.New("groth16: witness does not satisfy the constraint system")

	// ErrPublicInputLength is returned by Verify when the public input
	// slice length does not equal the SRS public-prefix length l.
	ErrPublicInputLength = errors.New("groth16: public input length does not match the public prefix")

	// ErrBadProof is returned by Verify when the pairing equation does
	// not hold.
	ErrBadProof = errors.New("groth16: pairing check failed")
)
