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
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ali-rezai/groth16-go/internal/fieldutil"
	"github.com/ali-rezai/groth16-go/internal/zkplog"
)

// Verifier holds the SRS of a circuit. It is pure and stateless between
// calls to Verify and may be shared freely across goroutines.
type Verifier struct {
	srs *SRS
}

// NewVerifier wraps srs for verification.
func NewVerifier(srs *SRS) *Verifier {
	return &Verifier{srs: srs}
}

// Verify checks proof against publicInputs. It fails with
// ErrPublicInputLength if len(publicInputs) does not equal the SRS's
// public-prefix width, and with ErrBadProof if the pairing equation
// does not hold.
//
// The pairing equation e(piA,piB) == e(alphaG1,betaG2)*e(piPub,gammaG2)*e(piC,deltaG2)
// is rearranged into the product-equals-one form PairingCheck expects
// by negating piA on the G1 side:
//
//	e(-piA,piB) * e(alphaG1,betaG2) * e(piPub,gammaG2) * e(piC,deltaG2) == 1
func (v *Verifier) Verify(proof Proof, publicInputs []int64) error {
	log := zkplog.Logger().With().Str("component", "verifier").Logger()
	srs := v.srs

	if len(publicInputs) != srs.Public {
		return ErrPublicInputLength
	}

	x := fieldutil.FromInt64Slice(publicInputs)
	piPub := g1MSM(srs.VerifierKey, x)

	var negPiA bls12381.G1Affine
	negPiA.Neg(&proof.A)

	g1Points := []bls12381.G1Affine{negPiA, srs.AlphaG1, piPub, proof.C}
	g2Points := []bls12381.G2Affine{proof.B, srs.BetaG2, srs.GammaG2, srs.DeltaG2}

	ok, err := bls12381.PairingCheck(g1Points, g2Points)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Msg("pairing check failed")
		return ErrBadProof
	}
	return nil
}
